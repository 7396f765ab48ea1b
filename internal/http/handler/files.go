package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docmanager/internal/storage"
)

// ServeFile streams a stored object addressed by the wildcard after /files/.
//
// @Summary Stored file content
// @Tags files
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /files/{key} [get]
func ServeFile(objects storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		rc, info, err := objects.Get(c.UserContext(), key)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
			}
			return writeError(c, fiber.StatusBadGateway, "STORAGE_UNAVAILABLE", "could not read file")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		// fasthttp closes the reader once the body is written.
		return c.SendStream(rc, int(info.Size))
	}
}
