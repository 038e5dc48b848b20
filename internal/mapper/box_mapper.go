package mapper

import (
	"Boxtrack/internal/dto"
	"Boxtrack/internal/models"
	"time"
)

func ToBoxRecordDTO(box *models.Box) dto.BoxRecordDTO {
	return dto.BoxRecordDTO{
		ID:           box.ID,
		BoxNumber:    box.BoxNumber,
		Priority:     box.Priority,
		CategoryID:   box.CategoryID,
		Category:     box.Category,
		BoxSize:      box.BoxSize,
		Description:  box.Description,
		Notes:        box.Notes,
		CreatedAt:    box.CreatedAt.Format(time.RFC3339),
		LastModified: box.LastModified.Format(time.RFC3339),
		IsDeleted:    box.IsDeleted,
	}
}

func ToBoxRecordDTOs(boxes []models.Box) []dto.BoxRecordDTO {
	records := make([]dto.BoxRecordDTO, 0, len(boxes))
	for i := range boxes {
		records = append(records, ToBoxRecordDTO(&boxes[i]))
	}
	return records
}

func ToBoxModel(record dto.BoxRecordDTO) (*models.Box, error) {
	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		return nil, err
	}
	lastModified, err := time.Parse(time.RFC3339, record.LastModified)
	if err != nil {
		return nil, err
	}
	return &models.Box{
		ID:           record.ID,
		BoxNumber:    record.BoxNumber,
		Priority:     record.Priority,
		CategoryID:   record.CategoryID,
		Category:     record.Category,
		BoxSize:      record.BoxSize,
		Description:  record.Description,
		Notes:        record.Notes,
		CreatedAt:    createdAt,
		LastModified: lastModified,
		IsDeleted:    record.IsDeleted,
	}, nil
}
