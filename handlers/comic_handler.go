package handlers

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nfnt/resize"

	"comicvault/comics"
	"comicvault/models"
)

const (
	coverWidth       = 400
	coverJPEGQuality = 10
)

// HandleListTitles lists every title in the catalog.
func HandleListTitles(c *fiber.Ctx) error {
	titles, err := store.GetTitles()
	if err != nil {
		return sendInternalServerError(c, errInternalServer, err)
	}
	if titles == nil {
		titles = []models.Title{}
	}
	return c.JSON(titles)
}

// HandleViewTitle returns one title with a paginated slice of its
// chapters. The page query parameter is 1-based.
func HandleViewTitle(c *fiber.Ctx) error {
	titleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return sendBadRequestError(c, errInvalidParameter)
	}
	pageNumber := c.QueryInt("page", 1)
	if pageNumber < 1 {
		pageNumber = 1
	}

	title, err := store.GetTitle(titleID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return sendNotFoundError(c, errTitleNotFound)
		}
		return sendInternalServerError(c, errInternalServer, err)
	}

	totalChapters := len(title.Chapters)
	totalPages := (totalChapters + chaptersPerPage - 1) / chaptersPerPage

	offset := (pageNumber - 1) * chaptersPerPage
	end := offset + chaptersPerPage
	if offset > totalChapters {
		offset = totalChapters
	}
	if end > totalChapters {
		end = totalChapters
	}
	chapters := title.Chapters[offset:end]
	title.Chapters = nil

	return c.JSON(fiber.Map{
		"title":          title,
		"chapters":       chapters,
		"page":           pageNumber,
		"total_pages":    totalPages,
		"total_chapters": totalChapters,
	})
}

// HandleViewChapter returns one chapter by number, with the numbers of
// the adjacent chapters when they exist.
func HandleViewChapter(c *fiber.Ctx) error {
	titleID, chapterNumber, ok := parseChapterParams(c)
	if !ok {
		return sendBadRequestError(c, errInvalidParameter)
	}

	chapter, err := store.FindChapterByNumber(titleID, chapterNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return sendNotFoundError(c, errChapterNotFound)
		}
		return sendInternalServerError(c, errInternalServer, err)
	}

	response := fiber.Map{"chapter": chapter}
	if _, err := store.FindChapterByNumber(titleID, chapterNumber-1); err == nil {
		response["previous"] = chapterNumber - 1
	}
	if _, err := store.FindChapterByNumber(titleID, chapterNumber+1); err == nil {
		response["next"] = chapterNumber + 1
	}

	return c.JSON(response)
}

// HandleViewPage serves the raw bytes of one page image.
func HandleViewPage(c *fiber.Ctx) error {
	titleID, chapterNumber, ok := parseChapterParams(c)
	if !ok {
		return sendBadRequestError(c, errInvalidParameter)
	}
	pageIndex, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return sendBadRequestError(c, errInvalidParameter)
	}

	page, err := retriever.GetPage(titleID, chapterNumber, pageIndex)
	if err != nil {
		return sendPageError(c, err)
	}

	pagesServed.Inc()
	c.Set(fiber.HeaderContentType, page.ContentType)
	return c.Send(page.Data)
}

// HandleViewCover serves the first page of a chapter downscaled and
// re-encoded as a low quality JPEG.
func HandleViewCover(c *fiber.Ctx) error {
	titleID, chapterNumber, ok := parseChapterParams(c)
	if !ok {
		return sendBadRequestError(c, errInvalidParameter)
	}

	page, err := retriever.GetPage(titleID, chapterNumber, 0)
	if err != nil {
		return sendPageError(c, err)
	}

	img, _, err := image.Decode(bytes.NewReader(page.Data))
	if err != nil {
		return sendInternalServerError(c, errCoverUnreadable, err)
	}

	reduced := resize.Resize(coverWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, reduced, &jpeg.Options{Quality: coverJPEGQuality}); err != nil {
		return sendInternalServerError(c, errInternalServer, err)
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(buf.Bytes())
}

// sendPageError maps retrieval failures onto HTTP statuses: anything the
// caller could have fixed with a different coordinate is a 404, the rest
// is a 500.
func sendPageError(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, comics.ErrPageOutOfRange) {
		return sendNotFoundError(c, errPageNotFound)
	}
	return sendInternalServerError(c, errInternalServer, err)
}

func parseChapterParams(c *fiber.Ctx) (titleID int64, chapterNumber int, ok bool) {
	titleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	chapterNumber, err = strconv.Atoi(c.Params("num"))
	if err != nil {
		return 0, 0, false
	}
	return titleID, chapterNumber, true
}
