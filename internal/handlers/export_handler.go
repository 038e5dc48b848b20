package handlers

import (
	"Boxtrack/internal/repository"
	"Boxtrack/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	service services.ExportService
}

func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func exportFilter(c *fiber.Ctx) repository.BoxFilter {
	return repository.BoxFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}
}

func (h *ExportHandler) respond(c *fiber.Ctx, path string, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrNoBoxesToExport) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "export failed"})
	}
	return c.Download(path)
}

func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	path, err := h.service.ExportCSV(exportFilter(c), c.Query("filename"))
	return h.respond(c, path, err)
}

func (h *ExportHandler) ExportJSON(c *fiber.Ctx) error {
	path, err := h.service.ExportJSON(exportFilter(c), c.Query("filename"))
	return h.respond(c, path, err)
}

func (h *ExportHandler) ExportMarkdown(c *fiber.Ctx) error {
	path, err := h.service.ExportMarkdown(exportFilter(c), c.Query("filename"))
	return h.respond(c, path, err)
}

func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	path, err := h.service.ExportPDF(exportFilter(c), c.Query("filename"))
	return h.respond(c, path, err)
}

func (h *ExportHandler) ExportLabels(c *fiber.Ctx) error {
	var req struct {
		BoxIDs   []uint `json:"box_ids" form:"box_ids"`
		Filename string `json:"filename" form:"filename"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid input"})
	}
	path, err := h.service.ExportLabels(req.BoxIDs, req.Filename)
	return h.respond(c, path, err)
}
