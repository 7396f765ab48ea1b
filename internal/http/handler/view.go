package handler

import (
	"github.com/gofiber/fiber/v2"

	"docmanager/internal/model"
	"docmanager/internal/service"
)

type searchRequest struct {
	Term string `json:"term"`
}

type folderRequest struct {
	FolderID string `json:"folder_id"`
}

type sortRequest struct {
	SortBy    model.SortKey   `json:"sort_by"`
	SortOrder model.SortOrder `json:"sort_order"`
}

type modeRequest struct {
	ViewMode model.ViewMode `json:"view_mode"`
}

// GetView returns the current view parameters.
//
// @Summary View parameters
// @Tags view
// @Produce json
// @Success 200 {object} model.ViewParameters
// @Router /view [get]
func GetView(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ws.Params())
	}
}

// SetSearch replaces the search term. Any string is accepted.
func SetSearch(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		ws.SetSearchTerm(c.UserContext(), req.Term)
		return c.JSON(ws.View())
	}
}

// SetFolder scopes the view to a folder. An empty id or "root" shows the root.
func SetFolder(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req folderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		ws.SetSelectedFolder(c.UserContext(), req.FolderID)
		return c.JSON(ws.View())
	}
}

// SetSort changes the sort key, the sort order, or both. Omitted fields keep
// their current value.
//
// @Summary Sort the view
// @Tags view
// @Accept json
// @Produce json
// @Param sort body sortRequest true "Sort key and order"
// @Success 200 {object} service.ViewState
// @Failure 422 {object} errorPayload
// @Router /view/sort [put]
func SetSort(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sortRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		if req.SortBy != "" && !req.SortBy.Valid() {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_INPUT", "unknown sort key")
		}
		if req.SortOrder != "" && !req.SortOrder.Valid() {
			return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_INPUT", "unknown sort order")
		}
		if req.SortBy != "" {
			if err := ws.SetSortBy(c.UserContext(), req.SortBy); err != nil {
				return writeWorkspaceError(c, err)
			}
		}
		if req.SortOrder != "" {
			if err := ws.SetSortOrder(c.UserContext(), req.SortOrder); err != nil {
				return writeWorkspaceError(c, err)
			}
		}
		return c.JSON(ws.View())
	}
}

// SetMode switches between grid and list presentation.
func SetMode(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req modeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		if err := ws.SetViewMode(c.UserContext(), req.ViewMode); err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(ws.View())
	}
}

// ApplyFilters replaces type, date and size filters and the sort in one step.
//
// @Summary Apply filters
// @Tags view
// @Accept json
// @Produce json
// @Param filters body model.FilterSet true "Filter set"
// @Success 200 {object} service.ViewState
// @Failure 422 {object} errorPayload
// @Router /view/filters [put]
func ApplyFilters(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f model.FilterSet
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		if err := ws.ApplyFilters(c.UserContext(), f); err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(ws.View())
	}
}
