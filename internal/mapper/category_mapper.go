package mapper

import (
	"Boxtrack/internal/dto"
	"Boxtrack/internal/models"
)

func ToCategoryGetDTO(category *models.Category, usageCount int64) dto.CategoryGetDTO {
	return dto.CategoryGetDTO{
		ID:         category.ID,
		Name:       category.Name,
		CreatedAt:  category.CreatedAt,
		IsActive:   category.IsActive,
		UsageCount: usageCount,
		CanDelete:  usageCount == 0,
	}
}
