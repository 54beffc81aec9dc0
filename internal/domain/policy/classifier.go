// Package policy holds the marketplace's pure decision rules: what kind of business a record
// describes, which businesses a request reaches, and what a business may do.
// Nothing here touches storage; callers load records and hand them in.
package policy

import (
	"strings"

	"marketplace/internal/domain/entity"
)

// ClassificationSource names the field that decided a classification flag.
type ClassificationSource string

const (
	SourceNone           ClassificationSource = ""
	SourceLookup         ClassificationSource = "business_types.name"
	SourceLegacyCategory ClassificationSource = "business_category"
	SourceLegacyType     ClassificationSource = "business_type"
)

const (
	lookupProductSeller   = "product seller"
	lookupDeliveryService = "delivery service"
	lookupDelivery        = "delivery"
)

// Classification is the normalized kind of a business.
// Both flags may be set; neither set means a generic business.
type Classification struct {
	IsProductSeller   bool                 `json:"is_product_seller"`
	IsDeliveryService bool                 `json:"is_delivery_service"`
	SellerSource      ClassificationSource `json:"seller_source,omitempty"`
	DeliverySource    ClassificationSource `json:"delivery_source,omitempty"`
}

// IsTyped reports whether the business is a product seller, a delivery service, or both.
func (c Classification) IsTyped() bool {
	return c.IsProductSeller || c.IsDeliveryService
}

// ClassifyBusiness reconciles the lookup name, the legacy free-text category and the legacy
// enum into one Classification. Each flag walks the sources in that order and stops at the
// first one that matches.
func ClassifyBusiness(b *entity.BusinessRecord) Classification {
	if b == nil {
		return Classification{}
	}

	lookup := normalizeTypeName(b.BusinessTypeName)
	category := normalizeTypeName(b.LegacyCategory)

	var c Classification

	switch {
	case isSellerName(lookup):
		c.IsProductSeller, c.SellerSource = true, SourceLookup
	case isSellerName(category):
		c.IsProductSeller, c.SellerSource = true, SourceLegacyCategory
	case b.LegacyType == entity.LegacyTypeProductSelling || b.LegacyType == entity.LegacyTypeBoth:
		c.IsProductSeller, c.SellerSource = true, SourceLegacyType
	}

	switch {
	case isDeliveryName(lookup):
		c.IsDeliveryService, c.DeliverySource = true, SourceLookup
	case isDeliveryName(category):
		c.IsDeliveryService, c.DeliverySource = true, SourceLegacyCategory
	case b.LegacyType == entity.LegacyTypeDeliveryService || b.LegacyType == entity.LegacyTypeBoth:
		c.IsDeliveryService, c.DeliverySource = true, SourceLegacyType
	}

	return c
}

func normalizeTypeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isSellerName(name string) bool {
	return name == lookupProductSeller
}

func isDeliveryName(name string) bool {
	return name == lookupDeliveryService || name == lookupDelivery
}
