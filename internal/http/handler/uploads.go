package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"docmanager/internal/upload"
)

// Uploader accepts upload batches and reports their progress.
type Uploader interface {
	Submit(files []upload.File) ([]upload.Job, []upload.Rejection)
	Jobs() []upload.Job
	Job(id string) (upload.Job, error)
}

type uploadResponse struct {
	Jobs     []upload.Job       `json:"jobs"`
	Rejected []upload.Rejection `json:"rejected"`
}

// UploadFiles accepts a multipart batch under the "files" field. Each file is
// validated on its own; accepted ones are queued and rejected ones reported.
//
// @Summary Upload files
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param files formData file true "Files to upload"
// @Param folder_id formData string false "Target folder"
// @Success 202 {object} uploadResponse
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /uploads [post]
func UploadFiles(up Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "multipart form expected")
		}
		headers := form.File["files"]
		if len(headers) == 0 {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "no files in field \"files\"")
		}

		folderID := c.FormValue("folder_id")
		files := make([]upload.File, 0, len(headers))
		for _, fh := range headers {
			f, err := readFormFile(fh, folderID)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
			}
			files = append(files, f)
		}

		jobs, rejected := up.Submit(files)
		if len(jobs) == 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(uploadResponse{Jobs: []upload.Job{}, Rejected: rejected})
		}
		if rejected == nil {
			rejected = []upload.Rejection{}
		}
		return c.Status(fiber.StatusAccepted).JSON(uploadResponse{Jobs: jobs, Rejected: rejected})
	}
}

func readFormFile(fh *multipart.FileHeader, folderID string) (upload.File, error) {
	src, err := fh.Open()
	if err != nil {
		return upload.File{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return upload.File{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return upload.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
		FolderID:    folderID,
	}, nil
}

// ListUploads returns every upload job, oldest first.
func ListUploads(up Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": up.Jobs()})
	}
}

// GetUpload returns one upload job.
func GetUpload(up Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		job, err := up.Job(c.Params("id"))
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(job)
	}
}
