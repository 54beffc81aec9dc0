package policy

import (
	"cmp"
	"slices"
	"strings"

	"marketplace/internal/domain/entity"
)

// RuleFor returns the targeting branch a request type falls into.
// Anything that is not delivery, ride, price or a common type (rent included) is ranked.
func RuleFor(t entity.RequestType) entity.TargetingRule {
	switch {
	case t == entity.RequestTypeDelivery:
		return entity.RuleDeliveryOnly
	case t == entity.RequestTypeRide:
		return entity.RuleRideExcluded
	case t == entity.RequestTypePrice:
		return entity.RuleProductSellers
	case t.IsCommon():
		return entity.RuleCommonTypes
	default:
		return entity.RuleRankedAll
	}
}

// NeedsDirectory reports whether a rule has to read the business directory at all.
func NeedsDirectory(rule entity.TargetingRule) bool {
	return rule != entity.RuleRideExcluded
}

// SelectCandidates applies the targeting rules to a pool of businesses.
// The pool may contain unverified or foreign businesses; they are filtered out here so the
// guarantees hold whatever the repository returned.
func SelectCandidates(req *entity.RequestDescriptor, pool []*entity.BusinessRecord) *entity.TargetingResult {
	rule := RuleFor(req.RequestType)
	country := NormalizeCountry(req.CountryCode)

	result := &entity.TargetingResult{
		RequestID:   req.RequestID,
		RequestType: req.RequestType,
		CountryCode: country,
		Rule:        rule,
		Candidates:  []*entity.NotificationCandidate{},
	}

	if !NeedsDirectory(rule) {
		return result
	}

	for _, b := range pool {
		if !b.IsVerifiedAndApproved() || NormalizeCountry(b.Country) != country {
			continue
		}

		reason, ok := candidateReason(rule, req, b)
		if !ok {
			continue
		}

		result.Candidates = append(result.Candidates, &entity.NotificationCandidate{
			UserID:        b.UserID,
			BusinessName:  b.BusinessName,
			BusinessEmail: b.BusinessEmail,
			Reason:        reason,
		})
	}

	SortCandidates(result.Candidates)

	return result
}

func candidateReason(rule entity.TargetingRule, req *entity.RequestDescriptor, b *entity.BusinessRecord) (entity.NotificationReason, bool) {
	class := ClassifyBusiness(b)

	switch rule {
	case entity.RuleDeliveryOnly:
		return entity.ReasonDeliveryService, class.IsDeliveryService
	case entity.RuleProductSellers:
		return entity.ReasonProductSeller, class.IsProductSeller
	case entity.RuleCommonTypes:
		return entity.ReasonTypeFiltered, class.IsTyped()
	case entity.RuleRankedAll:
		switch {
		case b.PrefersCategory(req.CategoryID):
			return entity.ReasonCategoryMatch, true
		case b.PrefersCategory(req.SubcategoryID):
			return entity.ReasonSubcategoryMatch, true
		default:
			return entity.ReasonGeneralBusiness, true
		}
	default:
		return "", false
	}
}

// SortCandidates orders candidates by reason rank, then business name, then user id.
func SortCandidates(candidates []*entity.NotificationCandidate) {
	slices.SortStableFunc(candidates, func(a, b *entity.NotificationCandidate) int {
		return cmp.Or(
			cmp.Compare(a.Reason.Rank(), b.Reason.Rank()),
			strings.Compare(a.BusinessName, b.BusinessName),
			strings.Compare(a.UserID.String(), b.UserID.String()),
		)
	})
}

// NormalizeCountry upper-cases and trims an ISO country code.
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
