package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
// Rows are owned by the business directory; the marketplace only updates categories.
type BusinessModel struct {
	BusinessID       uuid.UUID                   `gorm:"column:business_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName     string                      `gorm:"type:text;not null"`
	BusinessEmail    string                      `gorm:"type:text;not null"`
	BusinessTypeID   *uuid.UUID                  `gorm:"type:uuid;index"`
	BusinessType     string                      `gorm:"column:business_type;type:text"`
	BusinessCategory string                      `gorm:"column:business_category;type:text"`
	Categories       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Country          string                      `gorm:"type:varchar(2);not null;index:idx_businesses_country_status"`
	IsVerified       bool                        `gorm:"not null;default:false"`
	Status           string                      `gorm:"type:text;not null;default:'pending';index:idx_businesses_country_status"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BusinessWithTypeRow is the scan target of business queries that left-join business_types.
type BusinessWithTypeRow struct {
	BusinessModel
	BusinessTypeName *string `gorm:"column:business_type_name"`
}
