package dto

import (
	"time"
)

type CategoryGetDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	IsActive   bool      `json:"is_active"`
	UsageCount int64     `json:"usage_count"`
	CanDelete  bool      `json:"can_delete"`
}
