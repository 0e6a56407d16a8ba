package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const (
	errTitleNotFound    = "Title not found"
	errChapterNotFound  = "Chapter not found"
	errPageNotFound     = "Page not found"
	errScanInProgress   = "A library scan is already running"
	errInternalServer   = "Internal server error"
	errCoverUnreadable  = "Cover image could not be decoded"
	errInvalidParameter = "Invalid path parameter"
)

// sendNotFoundError sends a 404 with a JSON error body
func sendNotFoundError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": message,
	})
}

// sendBadRequestError sends a 400 with a JSON error body
func sendBadRequestError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// sendConflictError sends a 409 with a JSON error body
func sendConflictError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": message,
	})
}

// sendInternalServerError logs the underlying error and sends a 500
func sendInternalServerError(c *fiber.Ctx, message string, err error) error {
	log.Errorf("%s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
