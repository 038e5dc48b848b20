package services

import (
	"Boxtrack/internal/config"
	"Boxtrack/internal/dto"
	"Boxtrack/internal/helpers"
	"Boxtrack/internal/mapper"
	"Boxtrack/internal/models"
	"Boxtrack/internal/repository"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const exportTimestampLayout = "20060102_150405"

// ExportService renders a filtered box result set into a file. The same
// filter is applied identically across formats; the only side effect is the
// written file.
type ExportService interface {
	ExportCSV(filter repository.BoxFilter, customName string) (string, error)
	ExportJSON(filter repository.BoxFilter, customName string) (string, error)
	ExportMarkdown(filter repository.BoxFilter, customName string) (string, error)
	ExportPDF(filter repository.BoxFilter, customName string) (string, error)
	ExportLabels(boxIDs []uint, customName string) (string, error)
}

func NewExportService(boxRepo repository.BoxRepository, configuration *config.Configuration) ExportService {
	return &exportServiceImpl{boxRepo: boxRepo, directory: configuration.Export.Directory}
}

type exportServiceImpl struct {
	boxRepo   repository.BoxRepository
	directory string
}

func (s *exportServiceImpl) exportPath(customName, defaultPrefix, extension string) (string, error) {
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return "", err
	}
	prefix := defaultPrefix
	if customName != "" {
		prefix = helpers.SanitizeFilename(customName)
	}
	filename := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format(exportTimestampLayout), extension)
	return filepath.Join(s.directory, filename), nil
}

func (s *exportServiceImpl) boxesFor(filter repository.BoxFilter) ([]models.Box, error) {
	boxes, err := s.boxRepo.Search(filter)
	if err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxesToExport
	}
	return boxes, nil
}

func (s *exportServiceImpl) ExportCSV(filter repository.BoxFilter, customName string) (string, error) {
	boxes, err := s.boxesFor(filter)
	if err != nil {
		return "", err
	}
	path, err := s.exportPath(customName, "box_export", "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"id", "box_number", "priority", "category_id", "category",
		"box_size", "description", "notes", "created_at", "last_modified", "is_deleted",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for i := range boxes {
		record := mapper.ToBoxRecordDTO(&boxes[i])
		row := []string{
			strconv.FormatUint(uint64(record.ID), 10),
			strconv.Itoa(record.BoxNumber),
			record.Priority,
			strconv.FormatUint(uint64(record.CategoryID), 10),
			record.Category,
			record.BoxSize,
			record.Description,
			record.Notes,
			record.CreatedAt,
			record.LastModified,
			strconv.FormatBool(record.IsDeleted),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func (s *exportServiceImpl) ExportJSON(filter repository.BoxFilter, customName string) (string, error) {
	boxes, err := s.boxesFor(filter)
	if err != nil {
		return "", err
	}
	path, err := s.exportPath(customName, "box_export", "json")
	if err != nil {
		return "", err
	}

	envelope := dto.BoxExportDTO{
		ExportDate: time.Now().Format(time.RFC3339),
		BoxCount:   len(boxes),
		Boxes:      mapper.ToBoxRecordDTOs(boxes),
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *exportServiceImpl) ExportMarkdown(filter repository.BoxFilter, customName string) (string, error) {
	boxes, err := s.boxesFor(filter)
	if err != nil {
		return "", err
	}
	path, err := s.exportPath(customName, "box_export", "md")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Moving Box Inventory\n\n")
	b.WriteString(fmt.Sprintf("*Export Date: %s*\n\n", time.Now().Format("2006-01-02 15:04:05")))

	var filters []string
	if filter.Search != "" {
		filters = append(filters, fmt.Sprintf("Search term: '%s'", filter.Search))
	}
	if filter.Category != "" {
		filters = append(filters, fmt.Sprintf("Category: '%s'", filter.Category))
	}
	if filter.Priority != "" {
		filters = append(filters, fmt.Sprintf("Priority: '%s'", filter.Priority))
	}
	if len(filters) > 0 {
		b.WriteString("**Filters applied:** " + strings.Join(filters, ", ") + "\n\n")
	}
	b.WriteString(fmt.Sprintf("**Total Boxes:** %d\n\n", len(boxes)))

	b.WriteString("| Box # | Priority | Category | Box Size | Description | Notes | Created | Modified |\n")
	b.WriteString("|-------|----------|----------|----------|-------------|-------|---------|----------|\n")
	for i := range boxes {
		box := &boxes[i]
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			box.BoxNumber,
			box.Priority,
			box.Category,
			box.BoxSize,
			markdownCell(box.Description),
			markdownCell(box.Notes),
			box.CreatedAt.Format("2006-01-02"),
			box.LastModified.Format("2006-01-02"),
		))
	}

	b.WriteString("\n## Box Categories\n\n")
	byCategory := make(map[string][]int)
	for i := range boxes {
		name := boxes[i].Category
		if name == "" {
			name = "Uncategorized"
		}
		byCategory[name] = append(byCategory[name], boxes[i].BoxNumber)
	}
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		numbers := byCategory[name]
		b.WriteString(fmt.Sprintf("### %s\n\n", name))
		b.WriteString(fmt.Sprintf("**Number of boxes:** %d\n\n", len(numbers)))
		parts := make([]string, 0, len(numbers))
		for _, n := range numbers {
			parts = append(parts, strconv.Itoa(n))
		}
		b.WriteString("Box Numbers: " + strings.Join(parts, ", ") + "\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func (s *exportServiceImpl) ExportPDF(filter repository.BoxFilter, customName string) (string, error) {
	boxes, err := s.boxesFor(filter)
	if err != nil {
		return "", err
	}
	path, err := s.exportPath(customName, "box_export", "pdf")
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Moving Box Tracker - Box Export", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Box #", "Priority", "Category", "Size", "Description", "Created", "Modified"}
	widths := []float64{18, 28, 40, 22, 115, 27, 27}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 220)
	for i := range boxes {
		box := &boxes[i]
		cells := []string{
			strconv.Itoa(box.BoxNumber),
			box.Priority,
			box.Category,
			box.BoxSize,
			box.Description,
			box.CreatedAt.Format("2006-01-02"),
			box.LastModified.Format("2006-01-02"),
		}
		aligns := []string{"C", "C", "L", "C", "L", "C", "C"}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, aligns[j], true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

// ExportLabels renders one 4x6 inch label page per box, in the layout used
// for printing on shipping-label stock. An empty boxIDs slice exports labels
// for every non-deleted box.
func (s *exportServiceImpl) ExportLabels(boxIDs []uint, customName string) (string, error) {
	boxes, err := s.boxRepo.Search(repository.BoxFilter{})
	if err != nil {
		return "", err
	}
	if len(boxIDs) > 0 {
		wanted := make(map[uint]bool, len(boxIDs))
		for _, id := range boxIDs {
			wanted[id] = true
		}
		filtered := boxes[:0]
		for _, box := range boxes {
			if wanted[box.ID] {
				filtered = append(filtered, box)
			}
		}
		boxes = filtered
	}
	if len(boxes) == 0 {
		return "", ErrNoBoxesToExport
	}
	path, err := s.exportPath(customName, "box_labels", "pdf")
	if err != nil {
		return "", err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: 4, Ht: 6},
	})
	pdf.SetMargins(0.25, 0.25, 0.25)

	for i := range boxes {
		box := &boxes[i]
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 36)
		pdf.CellFormat(0, 0.8, fmt.Sprintf("BOX #%d", box.BoxNumber), "", 1, "C", false, 0, "")
		pdf.Ln(0.15)

		pdf.SetFont("Helvetica", "", 14)
		pdf.CellFormat(0, 0.35, "Priority: "+box.Priority, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 0.35, "Category: "+box.Category, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 0.35, "Size: "+box.BoxSize, "", 1, "C", false, 0, "")
		pdf.Ln(0.15)

		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 0.25, "Contents: "+box.Description, "", "C", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
