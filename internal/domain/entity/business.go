// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// LegacyBusinessType is the old enum column kept on business records.
type LegacyBusinessType string

const (
	LegacyTypeProductSelling  LegacyBusinessType = "product_selling"
	LegacyTypeDeliveryService LegacyBusinessType = "delivery_service"
	LegacyTypeBoth            LegacyBusinessType = "both"
)

// VerificationStatus is the admin review state of a business.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

// BusinessRecord is a business registered on the marketplace.
//
// Its kind is stored three times: the business_types lookup (BusinessTypeID/BusinessTypeName),
// the free-text LegacyCategory and the LegacyType enum. Use policy.ClassifyBusiness to read it.
type BusinessRecord struct {
	BusinessID       uuid.UUID          `json:"business_id"`
	UserID           uuid.UUID          `json:"user_id"` // Owner account.
	BusinessName     string             `json:"business_name"`
	BusinessEmail    string             `json:"business_email"`
	BusinessTypeID   *uuid.UUID         `json:"business_type_id,omitempty"`
	BusinessTypeName string             `json:"business_type_name,omitempty"` // Joined from business_types.name, empty without a join.
	LegacyType       LegacyBusinessType `json:"business_type,omitempty"`
	LegacyCategory   string             `json:"business_category,omitempty"`
	Categories       []string           `json:"categories"` // Preferred category/subcategory ids, a ranking hint only.
	Country          string             `json:"country"`
	IsVerified       bool               `json:"is_verified"`
	Status           VerificationStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// IsVerifiedAndApproved reports whether the business passed verification and admin review.
func (b *BusinessRecord) IsVerifiedAndApproved() bool {
	return b != nil && b.IsVerified && b.Status == StatusApproved
}

// PrefersCategory reports whether id is one of the business's preferred categories.
func (b *BusinessRecord) PrefersCategory(id string) bool {
	if b == nil || id == "" {
		return false
	}

	return slices.Contains(b.Categories, id)
}

// BusinessType is a row of the business_types lookup table.
type BusinessType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
