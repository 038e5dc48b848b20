package handlers

import (
	"Boxtrack/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type BackupHandler struct {
	service   services.BackupService
	scheduler *services.BackupScheduler
}

func NewBackupHandler(service services.BackupService, scheduler *services.BackupScheduler) *BackupHandler {
	return &BackupHandler{service: service, scheduler: scheduler}
}

func (h *BackupHandler) ListBackups(c *fiber.Ctx) error {
	backups, err := h.service.ListBackups()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list backups"})
	}
	backupConfig, err := h.service.LoadConfig()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not load backup config"})
	}
	return c.JSON(map[string]interface{}{
		"backups": backups,
		"config":  backupConfig,
	})
}

func (h *BackupHandler) CreateBackup(c *fiber.Ctx) error {
	if h.scheduler.IsRunning() {
		return c.Status(http.StatusConflict).JSON(map[string]interface{}{"success": false, "error": "backup is in progress"})
	}
	backup, err := h.service.CreateBackup()
	if err != nil {
		if errors.Is(err, services.ErrDatabaseMissing) {
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "backup failed"})
	}
	return c.JSON(map[string]interface{}{"success": true, "backup": backup})
}

func (h *BackupHandler) DeleteBackup(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.DeleteBackup(name); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBackupName):
			return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrBackupNotFound):
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"success": false, "error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not delete backup"})
		}
	}
	return c.JSON(map[string]interface{}{"success": true})
}

func (h *BackupHandler) UpdateConfig(c *fiber.Ctx) error {
	var req struct {
		MaxBackups int `json:"max_backups" form:"max_backups"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"success": false, "error": "invalid input"})
	}

	backupConfig, err := h.service.UpdateMaxBackups(req.MaxBackups)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"success": false, "error": "could not update backup config"})
	}
	return c.JSON(map[string]interface{}{"success": true, "config": backupConfig})
}
