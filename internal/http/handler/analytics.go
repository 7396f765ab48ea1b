package handler

import (
	"github.com/gofiber/fiber/v2"

	"docmanager/internal/analytics"
	"docmanager/internal/service"
)

// GetAnalytics returns distributions, trend and activity for ?range=
// (7d, 30d, 90d or 1y; 30d when omitted).
//
// @Summary Analytics report
// @Tags analytics
// @Produce json
// @Param range query string false "7d, 30d, 90d or 1y"
// @Success 200 {object} analytics.Report
// @Failure 422 {object} errorPayload
// @Router /analytics [get]
func GetAnalytics(ws service.Workspace) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := analytics.ParseRange(c.Query("range"))
		if err != nil {
			return writeWorkspaceError(c, err)
		}
		return c.JSON(ws.Analytics(r))
	}
}
