package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"comicvault/comics"
	"comicvault/indexer"
	"comicvault/models"
)

var (
	store           *models.Store
	retriever       *comics.Retriever
	libraryIndexer  *indexer.Indexer
	chaptersPerPage int
)

// Initialize configures all HTTP routes and middleware for the application.
func Initialize(app *fiber.App, s *models.Store, r *comics.Retriever, idx *indexer.Indexer, pageSize int) {
	log.Info("Initializing application routes and middleware")

	store = s
	retriever = r
	libraryIndexer = idx
	chaptersPerPage = pageSize

	app.Use(recover.New())
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/livez",
		ReadinessEndpoint: "/readyz",
	}))

	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api", compress.New())

	api.Get("/comics", HandleListTitles)
	api.Get("/comics/:id", HandleViewTitle)
	api.Get("/comics/:id/chapters/:num", HandleViewChapter)
	api.Get("/comics/:id/chapters/:num/pages/:page", HandleViewPage)
	api.Get("/comics/:id/chapters/:num/cover", HandleViewCover)
	api.Post("/scan", HandleScan)
}
