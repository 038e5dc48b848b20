package models

import (
	"time"
)

// BoxHistory is append-only; rows are never updated after insert.
type BoxHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BoxID     uint      `gorm:"index;not null" json:"box_id"`
	Action    string    `gorm:"type:varchar(20);not null" json:"action"`
	Changes   string    `gorm:"type:text;not null" json:"changes"`
	Editor    string    `gorm:"type:varchar(100);not null" json:"editor"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
