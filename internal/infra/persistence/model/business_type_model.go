package model

import "github.com/google/uuid"

// BusinessTypeModel is the GORM-specific struct for the 'business_types' lookup table.
type BusinessTypeModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessTypeModel) TableName() string {
	return "business_types"
}
