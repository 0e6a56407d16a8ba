package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"comicvault/indexer"
	"comicvault/models"
)

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Rebuild the catalog from the library root and exit",
		Run: func(cmd *cobra.Command, args []string) {
			if err := os.MkdirAll(opts.dataDirectory, os.ModePerm); err != nil {
				cmd.PrintErrf("Failed to create data directory: %v\n", err)
				os.Exit(1)
			}

			store, err := models.Initialize(opts.dataDirectory)
			if err != nil {
				cmd.PrintErrf("Failed to connect to database: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()

			if err := indexer.New(store, opts.library).Scan(); err != nil {
				cmd.PrintErrf("Scan failed: %v\n", err)
				os.Exit(1)
			}

			titles, err := store.GetTitles()
			if err != nil {
				cmd.PrintErrf("Failed to read catalog: %v\n", err)
				os.Exit(1)
			}
			cmd.Printf("Indexed %d titles from %s\n", len(titles), opts.library)
		},
	}
}
