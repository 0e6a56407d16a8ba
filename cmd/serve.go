package cmd

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"comicvault/comics"
	"comicvault/handlers"
	"comicvault/indexer"
	"comicvault/models"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Scan the library and serve the HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			log.Info("Starting ComicVault!")

			if err := os.MkdirAll(opts.dataDirectory, os.ModePerm); err != nil {
				cmd.PrintErrf("Failed to create data directory: %v\n", err)
				os.Exit(1)
			}
			log.Debugf("Using '%s/comicvault.db' as the database location", opts.dataDirectory)

			store, err := models.Initialize(opts.dataDirectory)
			if err != nil {
				cmd.PrintErrf("Failed to connect to database: %v\n", err)
				os.Exit(1)
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Errorf("Failed to close database: %v", err)
				}
			}()

			libraryIndexer := indexer.New(store, opts.library)
			retriever := comics.NewRetriever(store)

			// Populate the catalog before serving. A failed initial scan is
			// not fatal; the /api/scan endpoint can retry it.
			if err := libraryIndexer.Scan(); err != nil {
				log.Warnf("Initial library scan failed: %v", err)
			}

			if opts.scanCron != "" {
				scheduler, err := indexer.NewScheduler(libraryIndexer, opts.scanCron)
				if err != nil {
					cmd.PrintErrf("Invalid scan cron schedule %q: %v\n", opts.scanCron, err)
					os.Exit(1)
				}
				scheduler.Start()
				defer scheduler.Stop()
			}

			app := fiber.New(fiber.Config{
				CaseSensitive: true,
				StrictRouting: true,
				ServerHeader:  "ComicVault",
				AppName:       "ComicVault",
			})

			handlers.Initialize(app, store, retriever, libraryIndexer, opts.pageSize)

			if err := app.Listen(fmt.Sprintf(":%s", opts.port)); err != nil {
				cmd.PrintErrf("Server stopped: %v\n", err)
				os.Exit(1)
			}
		},
	}
}
