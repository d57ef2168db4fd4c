package models

import (
	"time"

	"github.com/google/uuid"
)

// Scan kinds accepted by the upload endpoint.
const (
	ScanKindFridge  = "fridge"
	ScanKindReport  = "report"
	ScanKindGrocery = "grocery"
)

// ScanUpload indexes an uploaded scan image (fridge photo, medical report or
// grocery haul) stored in S3. The vision and OCR services always operate on
// the most recent upload per (uid, kind).
type ScanUpload struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UID         string `gorm:"size:128;not null;index:idx_scan_uploads_user_kind" json:"uid"`
	Kind        string `gorm:"size:16;not null;index:idx_scan_uploads_user_kind" json:"kind"`
	ObjectKey   string `gorm:"size:512;not null" json:"object_key"`
	ContentType string `gorm:"size:64" json:"content_type"`

	// URL is a short-lived presigned download link, populated on upload
	// responses and never persisted.
	URL string `gorm:"-" json:"url,omitempty"`
}

func (ScanUpload) TableName() string {
	return "scan_uploads"
}
