package dto

// BoxExportDTO is the envelope written by the JSON export. Timestamps are
// RFC 3339 strings so the file round-trips independently of driver-specific
// time formatting.
type BoxExportDTO struct {
	ExportDate string         `json:"export_date"`
	BoxCount   int            `json:"box_count"`
	Boxes      []BoxRecordDTO `json:"boxes"`
}

type BoxRecordDTO struct {
	ID           uint   `json:"id"`
	BoxNumber    int    `json:"box_number"`
	Priority     string `json:"priority"`
	CategoryID   uint   `json:"category_id"`
	Category     string `json:"category"`
	BoxSize      string `json:"box_size"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
	LastModified string `json:"last_modified"`
	IsDeleted    bool   `json:"is_deleted"`
}
