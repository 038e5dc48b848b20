package services

import (
	"Boxtrack/internal/config"
	"Boxtrack/internal/dto"
	"Boxtrack/internal/mapper"
	"Boxtrack/internal/models"
	"Boxtrack/internal/repository"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupExportService(t *testing.T) (repository.BoxRepository, ExportService) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Box{}, &models.BoxHistory{}))

	boxRepo := repository.NewBoxRepository(db)
	cfg := &config.Configuration{}
	cfg.Export.Directory = t.TempDir()
	return boxRepo, NewExportService(boxRepo, cfg)
}

func seedExportBox(t *testing.T, repo repository.BoxRepository, number int, category string) *models.Box {
	now := time.Now()
	box := &models.Box{
		BoxNumber:    number,
		Priority:     "Priority 1",
		CategoryID:   1,
		Category:     category,
		BoxSize:      "Medium",
		Description:  "plates | glasses",
		Notes:        "fragile",
		CreatedAt:    now,
		LastModified: now,
	}
	entry := &models.BoxHistory{Action: "create", Changes: "seed", Editor: "test", Timestamp: now}
	assert.NoError(t, repo.CreateWithHistory(box, entry))
	return box
}

func TestExportService_ExportCSV(t *testing.T) {
	repo, service := setupExportService(t)
	seedExportBox(t, repo, 1, "Kitchen")
	seedExportBox(t, repo, 2, "Garage")

	path, err := service.ExportCSV(repository.BoxFilter{}, "")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "box_export_"))

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "box_number", rows[0][1])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "Kitchen", rows[1][4])
	assert.Equal(t, "plates | glasses", rows[1][6])
}

func TestExportService_ExportJSON_RoundTrip(t *testing.T) {
	repo, service := setupExportService(t)
	seeded := seedExportBox(t, repo, 3, "Kitchen")

	path, err := service.ExportJSON(repository.BoxFilter{}, "")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var envelope dto.BoxExportDTO
	assert.NoError(t, json.Unmarshal(data, &envelope))
	assert.Equal(t, 1, envelope.BoxCount)
	assert.Len(t, envelope.Boxes, 1)

	restored, err := mapper.ToBoxModel(envelope.Boxes[0])
	assert.NoError(t, err)
	assert.Equal(t, seeded.BoxNumber, restored.BoxNumber)
	assert.Equal(t, seeded.Category, restored.Category)
	assert.Equal(t, seeded.Description, restored.Description)
}

func TestExportService_ExportMarkdown(t *testing.T) {
	repo, service := setupExportService(t)
	seedExportBox(t, repo, 1, "Kitchen")
	seedExportBox(t, repo, 2, "Kitchen")
	seedExportBox(t, repo, 3, "Garage")

	path, err := service.ExportMarkdown(repository.BoxFilter{Priority: "Priority 1"}, "")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Moving Box Inventory")
	assert.Contains(t, content, "**Filters applied:** Priority: 'Priority 1'")
	assert.Contains(t, content, "**Total Boxes:** 3")
	// pipe in the description must not break the table
	assert.Contains(t, content, "plates \\| glasses")
	assert.Contains(t, content, "## Box Categories")
	assert.Contains(t, content, "### Kitchen")
	assert.Contains(t, content, "Box Numbers: 1, 2")
}

func TestExportService_ExportPDF(t *testing.T) {
	repo, service := setupExportService(t)
	seedExportBox(t, repo, 1, "Kitchen")

	path, err := service.ExportPDF(repository.BoxFilter{}, "")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportService_ExportLabels_SelectsRequestedBoxes(t *testing.T) {
	repo, service := setupExportService(t)
	first := seedExportBox(t, repo, 1, "Kitchen")
	seedExportBox(t, repo, 2, "Garage")

	path, err := service.ExportLabels([]uint{first.ID}, "")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "box_labels_"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportService_ExportLabels_UnknownIDs(t *testing.T) {
	repo, service := setupExportService(t)
	seedExportBox(t, repo, 1, "Kitchen")

	_, err := service.ExportLabels([]uint{99}, "")
	assert.ErrorIs(t, err, ErrNoBoxesToExport)
}

func TestExportService_EmptyResult(t *testing.T) {
	_, service := setupExportService(t)

	_, err := service.ExportCSV(repository.BoxFilter{}, "")
	assert.ErrorIs(t, err, ErrNoBoxesToExport)
}

func TestExportService_CustomNameSanitized(t *testing.T) {
	repo, service := setupExportService(t)
	seedExportBox(t, repo, 1, "Kitchen")

	path, err := service.ExportCSV(repository.BoxFilter{}, "my export!/..")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "my_export____"))
}
