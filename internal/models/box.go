package models

import (
	"time"
)

// Box keeps its own timestamp columns instead of BaseModel: the tracker uses
// an explicit is_deleted flag so soft-deleted boxes stay visible to the
// number allocator, and last_modified is only touched by tracked updates.
type Box struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BoxNumber    int       `gorm:"not null;index" json:"box_number"`
	Priority     string    `gorm:"type:varchar(50);not null" json:"priority"`
	CategoryID   uint      `gorm:"index" json:"category_id"`
	Category     string    `gorm:"type:varchar(255);not null" json:"category"`
	BoxSize      string    `gorm:"type:varchar(50);not null" json:"box_size"`
	Description  string    `gorm:"type:text" json:"description"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastModified time.Time `gorm:"not null" json:"last_modified"`
	IsDeleted    bool      `gorm:"not null;default:false" json:"is_deleted"`
}
