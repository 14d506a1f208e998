package handlers

import (
	"log/slog"

	"github.com/contentflow/backlog-api/internal/service"
	"github.com/contentflow/backlog-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type OrchestrationHandler struct {
	s service.OrchestrationService
}

func NewOrchestrationHandler(s service.OrchestrationService) *OrchestrationHandler {
	return &OrchestrationHandler{s: s}
}

// GenerateWeeklyContent always answers 200 with the flow envelope; the
// caller detects failure from the envelope's status field.
func (h *OrchestrationHandler) GenerateWeeklyContent(c *fiber.Ctx) error {
	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	resp := h.s.GenerateWeeklyContent(c.Context(), &req)
	return c.Status(fiber.StatusOK).JSON(resp)
}
