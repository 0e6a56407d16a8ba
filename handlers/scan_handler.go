package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"comicvault/indexer"
)

// HandleScan triggers a synchronous library rescan and redirects to the
// title listing. Concurrent scan requests are rejected with a 409.
func HandleScan(c *fiber.Ctx) error {
	start := time.Now()

	if err := libraryIndexer.Scan(); err != nil {
		if errors.Is(err, indexer.ErrScanInProgress) {
			return sendConflictError(c, errScanInProgress)
		}
		return sendInternalServerError(c, errInternalServer, err)
	}

	scansTotal.Inc()
	scanDuration.Observe(time.Since(start).Seconds())

	return c.Redirect("/api/comics", fiber.StatusSeeOther)
}
