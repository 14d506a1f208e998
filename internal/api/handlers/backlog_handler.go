package handlers

import (
	"errors"
	"log/slog"

	"github.com/contentflow/backlog-api/internal/service"
	"github.com/contentflow/backlog-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type BacklogHandler struct {
	s service.BacklogService
}

func NewBacklogHandler(s service.BacklogService) *BacklogHandler {
	return &BacklogHandler{s: s}
}

func (h *BacklogHandler) CreateItem(c *fiber.Ctx) error {
	var bc transfer.BacklogCreation
	if err := c.BodyParser(&bc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	item, err := h.s.Create(c.Context(), &bc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *BacklogHandler) ListItems(c *fiber.Ctx) error {
	filter := transfer.BacklogFilter{
		Status:   c.Query("status"),
		PostType: c.Query("postType"),
	}

	items, err := h.s.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list backlog items",
		})
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *BacklogHandler) GetItem(c *fiber.Ctx) error {
	id := c.Params("id")

	item, err := h.s.GetInfo(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBacklogItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Backlog item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to fetch backlog item",
		})
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *BacklogHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var bu transfer.BacklogUpdate
	if err := c.BodyParser(&bu); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	item, err := h.s.Update(c.Context(), id, &bu)
	if err != nil {
		if errors.Is(err, service.ErrBacklogItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Backlog item not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(item)
}
