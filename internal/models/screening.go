package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

type Screening struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID *uuid.UUID      `gorm:"type:uuid" json:"resume_document_id,omitempty"`
	ResumeText       string          `gorm:"type:text;not null" json:"-"`
	JobRequirements  string          `gorm:"type:text;not null" json:"-"`
	Status           ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`
	Recommendation   *string         `gorm:"type:text" json:"recommendation,omitempty"`
	Score            *int            `json:"score,omitempty"`
	ResultJSON       *string         `gorm:"type:jsonb" json:"-"`
	ErrorMessage     *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument *Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}
