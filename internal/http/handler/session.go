package handler

import (
	"github.com/gofiber/fiber/v2"

	"docmanager/internal/model"
	"docmanager/internal/permission"
	"docmanager/internal/service"
)

type sessionUserRequest struct {
	UserID string `json:"user_id"`
}

type sessionUser struct {
	User         model.User             `json:"user"`
	Capabilities permission.Capabilities `json:"capabilities"`
}

type roleCapabilities struct {
	Role         model.Role             `json:"role"`
	Capabilities permission.Capabilities `json:"capabilities"`
}

// GetCurrentUser returns the simulated session user and its role capabilities.
//
// @Summary Current user
// @Tags session
// @Produce json
// @Success 200 {object} sessionUser
// @Failure 404 {object} errorPayload
// @Router /session/user [get]
func GetCurrentUser(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := ws.CurrentUser()
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no current user")
		}
		return c.JSON(sessionUser{User: u, Capabilities: permission.CapabilitiesForRole(u.Role)})
	}
}

// SetCurrentUser switches the simulated session to another known user.
func SetCurrentUser(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sessionUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
		}
		if err := ws.SetCurrentUser(c.UserContext(), req.UserID); err != nil {
			return writeWorkspaceError(c, err)
		}
		u, _ := ws.CurrentUser()
		return c.JSON(sessionUser{User: u, Capabilities: permission.CapabilitiesForRole(u.Role)})
	}
}

func ListUsers(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": ws.Users()})
	}
}

// ListRoles returns the fixed capability set of every role.
func ListRoles() fiber.Handler {
	roles := make([]roleCapabilities, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, roleCapabilities{Role: r, Capabilities: permission.CapabilitiesForRole(r)})
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": roles})
	}
}
