package handlers

import (
	"Boxtrack/internal/repository"
	"Boxtrack/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service services.BoxService
}

func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

type boxRequest struct {
	BoxNumber   *int   `json:"box_number" form:"box_number"`
	Priority    string `json:"priority" form:"priority"`
	CategoryID  uint   `json:"category_id" form:"category_id"`
	BoxSize     string `json:"box_size" form:"box_size"`
	Description string `json:"description" form:"description"`
	Notes       string `json:"notes" form:"notes"`
	Editor      string `json:"editor" form:"editor"`
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req boxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Priority == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "priority is required"})
	}
	if req.BoxSize == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "box_size is required"})
	}
	if req.Editor == "" {
		req.Editor = "user"
	}

	box, err := h.service.CreateBox(req.Priority, req.CategoryID, req.BoxSize, req.Description, req.Notes, req.Editor, req.BoxNumber)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) || errors.Is(err, services.ErrBoxNumberTaken) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not create box"})
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	box, err := h.service.GetBoxByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not load box"})
	}
	return c.JSON(box)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	var req boxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Editor == "" {
		req.Editor = "user"
	}

	box, err := h.service.UpdateBox(uint(id), req.Priority, req.CategoryID, req.BoxSize, req.Description, req.Notes, req.Editor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBoxNotFound):
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "box not found"})
		case errors.Is(err, services.ErrInvalidCategory):
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not update box"})
		}
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}
	editor := c.Query("editor", "user")

	if err := h.service.DeleteBox(uint(id), editor); err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not delete box"})
	}
	return c.JSON(map[string]interface{}{"success": true})
}

func (h *BoxHandler) HardDeleteBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	if err := h.service.HardDeleteBox(uint(id)); err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": "box not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not delete box"})
	}
	return c.JSON(map[string]interface{}{"success": true})
}

func (h *BoxHandler) PurgeDeleted(c *fiber.Ctx) error {
	purged, err := h.service.PurgeDeleted()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not purge deleted boxes"})
	}
	return c.JSON(map[string]interface{}{"success": true, "purged": purged})
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	filter := repository.BoxFilter{
		BoxNumber:      c.QueryInt("box_number"),
		Priority:       c.Query("priority"),
		Category:       c.Query("category"),
		BoxSize:        c.Query("box_size"),
		Search:         c.Query("search"),
		IncludeDeleted: c.QueryBool("include_deleted"),
		Limit:          c.QueryInt("limit"),
		Offset:         c.QueryInt("offset"),
	}
	if expr := c.Query("filter"); expr != "" {
		filter.Expression, filter.ExpressionArgs = services.ParseFilter(expr)
	}

	boxes, err := h.service.GetBoxes(filter)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list boxes"})
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) GetBoxHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid box ID"})
	}

	history, err := h.service.GetBoxHistory(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not load history"})
	}
	return c.JSON(history)
}

func (h *BoxHandler) NextBoxNumber(c *fiber.Ctx) error {
	next, err := h.service.NextBoxNumber()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not compute next box number"})
	}
	return c.JSON(map[string]interface{}{"next_box_number": next})
}

func (h *BoxHandler) RecentBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetRecentBoxes(c.QueryInt("limit", 5))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list recent boxes"})
	}
	return c.JSON(boxes)
}
