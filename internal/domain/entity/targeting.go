package entity

import "github.com/google/uuid"

// NotificationReason explains why a business was selected for a request.
type NotificationReason string

const (
	ReasonDeliveryService  NotificationReason = "delivery_service"
	ReasonProductSeller    NotificationReason = "product_seller"
	ReasonTypeFiltered     NotificationReason = "type_filtered"
	ReasonCategoryMatch    NotificationReason = "category_match"
	ReasonSubcategoryMatch NotificationReason = "subcategory_match"
	ReasonGeneralBusiness  NotificationReason = "general_business"
)

// Rank orders reasons by match specificity; lower is more specific.
func (r NotificationReason) Rank() int {
	switch r {
	case ReasonCategoryMatch:
		return 1
	case ReasonSubcategoryMatch:
		return 2
	case ReasonGeneralBusiness:
		return 3
	default:
		// Type-based reasons never mix with ranked ones in one result.
		return 0
	}
}

// TargetingRule names the branch of the targeting engine that produced a result.
type TargetingRule string

const (
	RuleDeliveryOnly   TargetingRule = "delivery_only"
	RuleRideExcluded   TargetingRule = "ride_excluded"
	RuleProductSellers TargetingRule = "product_sellers"
	RuleCommonTypes    TargetingRule = "common_types"
	RuleRankedAll      TargetingRule = "ranked_all"
)

// NotificationCandidate is a business selected to be notified about a request.
type NotificationCandidate struct {
	UserID        uuid.UUID          `json:"user_id"`
	BusinessName  string             `json:"business_name"`
	BusinessEmail string             `json:"business_email"`
	Reason        NotificationReason `json:"notification_reason"`
}

// TargetingResult is the successful outcome of a targeting computation.
// An empty Candidates slice means no business is eligible; lookup failures are errors instead.
type TargetingResult struct {
	RequestID   string                   `json:"request_id"`
	RequestType RequestType              `json:"request_type"`
	CountryCode string                   `json:"country_code"`
	Rule        TargetingRule            `json:"rule"`
	Candidates  []*NotificationCandidate `json:"candidates"`
}

// UserIDs returns the candidate owners in result order.
func (r *TargetingResult) UserIDs() []uuid.UUID {
	if r == nil {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		ids = append(ids, c.UserID)
	}

	return ids
}
