package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"docmanager/internal/model"
	"docmanager/internal/permission"
	"docmanager/internal/service"
	"docmanager/internal/storage"
)

// downloadURLExpiry bounds presigned download links.
const downloadURLExpiry = 15 * time.Minute

// ListDocuments returns the filtered, sorted view together with the
// parameters it was derived from.
//
// @Summary Visible documents
// @Tags documents
// @Produce json
// @Success 200 {object} service.ViewState
// @Router /documents [get]
func ListDocuments(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ws.View())
	}
}

// ListAllDocuments returns every document regardless of the view.
func ListAllDocuments(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs := ws.Documents()
		return c.JSON(fiber.Map{"data": docs, "total": len(docs)})
	}
}

// authorize loads the current user's capabilities on the document in the
// :id route param. When allowed(caps) does not hold the error response is
// already written and ok is false.
func authorize(c *fiber.Ctx, ws service.Workspace, action string, allowed func(permission.Capabilities) bool) (id string, ok bool, err error) {
	id = c.Params("id")
	caps, err := ws.Permissions(id)
	if err != nil {
		return id, false, writeWorkspaceError(c, err)
	}
	if !allowed(caps) {
		return id, false, writeWorkspaceError(c, fmt.Errorf("%s document %s: %w", action, id, model.ErrForbidden))
	}
	return id, true, nil
}

// GetDocument returns one document when the current user may view it.
//
// @Summary Get document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := authorize(c, ws, "view", func(p permission.Capabilities) bool { return p.View })
		if !ok {
			return err
		}
		doc, err := ws.Document(id)
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(doc)
	}
}

// CreateDocument adds a document from a JSON body.
//
// @Summary Add document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body model.NewDocument true "Document"
// @Success 201 {object} model.Document
// @Failure 422 {object} errorPayload
// @Router /documents [post]
func CreateDocument(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewDocument
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		if in.Name == "" {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_INPUT", "name is required")
		}
		doc, err := ws.AddDocument(c.UserContext(), in)
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// UpdateDocument merges a partial document when the current user may edit it.
//
// @Summary Update document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param patch body model.DocumentPatch true "Fields to change"
// @Success 200 {object} model.Document
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [patch]
func UpdateDocument(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.DocumentPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		id, ok, err := authorize(c, ws, "edit", func(p permission.Capabilities) bool { return p.Edit })
		if !ok {
			return err
		}
		doc, err := ws.UpdateDocument(c.UserContext(), id, patch)
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document when the current user may delete it.
//
// @Summary Delete document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := authorize(c, ws, "delete", func(p permission.Capabilities) bool { return p.Delete })
		if !ok {
			return err
		}
		if err := ws.DeleteDocument(c.UserContext(), id); err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetPermissions evaluates every check for the current user on a document.
func GetPermissions(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps, err := ws.Permissions(c.Params("id"))
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(caps)
	}
}

// DownloadDocument counts a download and returns where to fetch the
// content. Uploaded content gets a presigned storage URL.
//
// @Summary Download link
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Router /documents/{id}/download [get]
func DownloadDocument(ws service.Workspace, objects storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := authorize(c, ws, "view", func(p permission.Capabilities) bool { return p.View })
		if !ok {
			return err
		}
		doc, err := ws.RecordDownload(c.UserContext(), id)
		if err != nil {
			return writeWorkspaceError(c, err)
		}

		url := doc.SourceURL
		if key, ok := storage.KeyFromSourceURL(doc.SourceURL); ok && objects != nil {
			url, err = objects.PresignGet(c.UserContext(), key, downloadURLExpiry)
			if err != nil {
				return writeError(c, fiber.StatusBadGateway, "STORAGE_UNAVAILABLE", "could not sign download url")
			}
		}
		return c.JSON(fiber.Map{"url": url, "download_count": doc.DownloadCount})
	}
}
