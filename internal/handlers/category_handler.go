package handlers

import (
	"Boxtrack/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service services.CategoryService
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategoriesWithUsage()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list categories"})
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid input"})
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCategoryName) || errors.Is(err, services.ErrDuplicateCategory) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not create category"})
	}
	return c.JSON(map[string]interface{}{"success": true, "id": category.ID, "name": category.Name})
}

func (h *CategoryHandler) RenameCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid category ID"})
	}

	var req struct {
		Name string `json:"name" form:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid input"})
	}

	updated, err := h.service.RenameCategory(uint(id), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrEmptyCategoryName), errors.Is(err, services.ErrDuplicateCategory):
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not rename category"})
		}
	}
	return c.JSON(map[string]interface{}{"success": true, "boxes_updated": updated})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid category ID"})
	}

	if err := h.service.DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrCategoryInUse):
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not delete category"})
		}
	}
	return c.JSON(map[string]interface{}{"success": true})
}
