package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestDispatchModel is the GORM-specific struct for the 'request_dispatches' table.
type RequestDispatchModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID      string    `gorm:"type:text;not null;index"`
	RequestType    string    `gorm:"type:text;not null"`
	CountryCode    string    `gorm:"type:varchar(2);not null"`
	Rule           string    `gorm:"type:text;not null"`
	CandidateCount int       `gorm:"not null;default:0"`
	Status         string    `gorm:"type:text;not null"`
	TotalSent      int       `gorm:"not null;default:0"`
	TotalFailed    int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestDispatchModel) TableName() string {
	return "request_dispatches"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per push attempt to one business device.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DispatchID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason       string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
