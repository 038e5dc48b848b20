package handlers

import (
	"Boxtrack/internal/repository"
	"Boxtrack/internal/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportCSV(filter repository.BoxFilter, customName string) (string, error) {
	args := m.Called(filter, customName)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) ExportJSON(filter repository.BoxFilter, customName string) (string, error) {
	args := m.Called(filter, customName)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) ExportMarkdown(filter repository.BoxFilter, customName string) (string, error) {
	args := m.Called(filter, customName)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) ExportPDF(filter repository.BoxFilter, customName string) (string, error) {
	args := m.Called(filter, customName)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) ExportLabels(boxIDs []uint, customName string) (string, error) {
	args := m.Called(boxIDs, customName)
	return args.String(0), args.Error(1)
}

func TestExportHandler_ExportCSV(t *testing.T) {
	app := fiber.New()
	mockService := new(MockExportService)
	handler := NewExportHandler(mockService)

	app.Get("/export/csv", handler.ExportCSV)

	path := filepath.Join(t.TempDir(), "box_export_20260101_000000.csv")
	assert.NoError(t, os.WriteFile(path, []byte("id,box_number\n"), 0644))

	expected := repository.BoxFilter{Search: "plates", Priority: "Store"}
	mockService.On("ExportCSV", expected, "").Return(path, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/csv?search=plates&priority=Store", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	mockService.AssertExpectations(t)
}

func TestExportHandler_ExportPDF_Empty(t *testing.T) {
	app := fiber.New()
	mockService := new(MockExportService)
	handler := NewExportHandler(mockService)

	app.Get("/export/pdf", handler.ExportPDF)

	mockService.On("ExportPDF", repository.BoxFilter{}, "").Return("", services.ErrNoBoxesToExport)

	req := httptest.NewRequest(http.MethodGet, "/export/pdf", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportHandler_ExportLabels(t *testing.T) {
	app := fiber.New()
	mockService := new(MockExportService)
	handler := NewExportHandler(mockService)

	app.Post("/export/labels", handler.ExportLabels)

	path := filepath.Join(t.TempDir(), "box_labels_20260101_000000.pdf")
	assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	mockService.On("ExportLabels", []uint{1, 3}, "garage labels").Return(path, nil)

	reqBodyJSON, _ := json.Marshal(map[string]interface{}{
		"box_ids":  []uint{1, 3},
		"filename": "garage labels",
	})
	req := httptest.NewRequest(http.MethodPost, "/export/labels", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestExportHandler_CustomFilename(t *testing.T) {
	app := fiber.New()
	mockService := new(MockExportService)
	handler := NewExportHandler(mockService)

	app.Get("/export/markdown", handler.ExportMarkdown)

	path := filepath.Join(t.TempDir(), "inventory_20260101_000000.md")
	assert.NoError(t, os.WriteFile(path, []byte("# Moving Box Inventory\n"), 0644))

	mockService.On("ExportMarkdown", repository.BoxFilter{}, "inventory").Return(path, nil)

	req := httptest.NewRequest(http.MethodGet, "/export/markdown?filename=inventory", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
