package cmd

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

// options holds the process configuration shared by all subcommands.
type options struct {
	library       string
	dataDirectory string
	port          string
	pageSize      int
	logLevel      string
	scanCron      string
}

// Execute runs the root command. It exits the process on failure.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the comicvault root command
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "comicvault",
		Short: "Comic library server",
		Long:  "Indexes a library of comic titles on disk and serves individual pages straight out of chapter directories and cbz/cbr archives.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel(opts.logLevel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.library, "library", envOr("COMICS_FOLDER", "/data/comics"), "Path to the comic library root")
	flags.StringVar(&opts.dataDirectory, "data-directory", envOr("VAULT_DATA_DIR", defaultDataDirectory()), "Path to the data directory")
	flags.StringVar(&opts.port, "port", envOr("PORT", "3000"), "Port to run the server on")
	flags.IntVar(&opts.pageSize, "page-size", envIntOr("CHAPTERS_PER_PAGE", 20), "Chapters shown per listing page")
	flags.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "info"), "Set the log level (debug, info, warn, error)")
	flags.StringVar(&opts.scanCron, "scan-cron", os.Getenv("SCAN_CRON"), "Optional cron schedule for automatic rescans")

	cmd.AddCommand(
		newServeCmd(opts),
		newScanCmd(opts),
		newVersionCmd(version),
	)

	return cmd
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.LevelDebug)
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	default:
		log.SetLevel(log.LevelInfo)
	}
}

func defaultDataDirectory() string {
	return filepath.Join(os.Getenv("HOME"), "comicvault")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
