package handler

import (
	"github.com/gofiber/fiber/v2"

	"docmanager/internal/model"
	"docmanager/internal/service"
)

// ListFolders returns every folder with its document count, plus the number
// of documents filed at the root.
//
// @Summary Folders
// @Tags folders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /folders [get]
func ListFolders(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, root := ws.FolderSummaries()
		return c.JSON(fiber.Map{"data": folders, "root_count": root})
	}
}

// CreateFolder adds a folder.
//
// @Summary Add folder
// @Tags folders
// @Accept json
// @Produce json
// @Param folder body model.NewFolder true "Folder"
// @Success 201 {object} model.Folder
// @Failure 422 {object} errorPayload
// @Router /folders [post]
func CreateFolder(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewFolder
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		f, err := ws.AddFolder(c.UserContext(), in)
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// UpdateFolder merges a partial folder.
func UpdateFolder(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.FolderPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		f, err := ws.UpdateFolder(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(f)
	}
}

// DeleteFolder removes a folder and moves its documents to the root.
//
// @Summary Delete folder
// @Tags folders
// @Param id path string true "Folder ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /folders/{id} [delete]
func DeleteFolder(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ws.DeleteFolder(c.UserContext(), c.Params("id")); err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
