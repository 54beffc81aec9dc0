package policy

import (
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approved(name, country string, mutate func(*entity.BusinessRecord)) *entity.BusinessRecord {
	b := &entity.BusinessRecord{
		BusinessID:    uuid.New(),
		UserID:        uuid.New(),
		BusinessName:  name,
		BusinessEmail: name + "@example.com",
		Country:       country,
		IsVerified:    true,
		Status:        entity.StatusApproved,
	}
	if mutate != nil {
		mutate(b)
	}

	return b
}

func seller(b *entity.BusinessRecord) {
	b.BusinessTypeName = "Product Seller"
}

func courier(b *entity.BusinessRecord) {
	b.LegacyType = entity.LegacyTypeDeliveryService
}

func hybrid(b *entity.BusinessRecord) {
	b.LegacyType = entity.LegacyTypeBoth
}

func unverify(b *entity.BusinessRecord) {
	b.IsVerified = false
}

func samplePool() []*entity.BusinessRecord {
	return []*entity.BusinessRecord{
		approved("Zeta Couriers", "LK", courier),
		approved("Alpha Mart", "LK", seller),
		approved("Beta Both", "LK", hybrid),
		approved("Gamma Salon", "LK", nil),
		approved("Delta Mart", "IN", seller),
		approved("Epsilon Pending", "LK", func(b *entity.BusinessRecord) {
			seller(b)
			b.Status = entity.StatusPending
		}),
		approved("Eta Unverified", "LK", func(b *entity.BusinessRecord) {
			courier(b)
			unverify(b)
		}),
	}
}

func names(result *entity.TargetingResult) []string {
	out := make([]string, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		out = append(out, c.BusinessName)
	}

	return out
}

func TestRuleFor(t *testing.T) {
	assert.Equal(t, entity.RuleDeliveryOnly, RuleFor(entity.RequestTypeDelivery))
	assert.Equal(t, entity.RuleRideExcluded, RuleFor(entity.RequestTypeRide))
	assert.Equal(t, entity.RuleProductSellers, RuleFor(entity.RequestTypePrice))
	for _, rt := range []entity.RequestType{"item", "service", "tours", "events", "construction", "education", "hiring"} {
		assert.Equal(t, entity.RuleCommonTypes, RuleFor(rt), rt)
	}
	assert.Equal(t, entity.RuleRankedAll, RuleFor(entity.RequestTypeRent))
	assert.Equal(t, entity.RuleRankedAll, RuleFor("parking"))
}

func TestSelectCandidates_RideIsAlwaysEmpty(t *testing.T) {
	req := &entity.RequestDescriptor{RequestID: "r1", RequestType: entity.RequestTypeRide, CategoryID: "c1", CountryCode: "LK"}

	result := SelectCandidates(req, samplePool())

	assert.Equal(t, entity.RuleRideExcluded, result.Rule)
	assert.NotNil(t, result.Candidates)
	assert.Empty(t, result.Candidates)
}

func TestSelectCandidates_DeliveryOnlyDeliveryServices(t *testing.T) {
	req := &entity.RequestDescriptor{RequestID: "r2", RequestType: entity.RequestTypeDelivery, CountryCode: "lk"}

	result := SelectCandidates(req, samplePool())

	assert.Equal(t, "LK", result.CountryCode)
	assert.Equal(t, []string{"Beta Both", "Zeta Couriers"}, names(result))
	for _, c := range result.Candidates {
		assert.Equal(t, entity.ReasonDeliveryService, c.Reason)
	}
}

func TestSelectCandidates_PriceOnlyProductSellersInCountry(t *testing.T) {
	req := &entity.RequestDescriptor{RequestID: "r3", RequestType: entity.RequestTypePrice, CountryCode: "LK"}

	result := SelectCandidates(req, samplePool())

	assert.Equal(t, []string{"Alpha Mart", "Beta Both"}, names(result))
	for _, c := range result.Candidates {
		assert.Equal(t, entity.ReasonProductSeller, c.Reason)
	}
}

func TestSelectCandidates_CommonTypesUnionOfSellersAndDelivery(t *testing.T) {
	for _, rt := range []entity.RequestType{"item", "service", "tours", "events", "construction", "education", "hiring"} {
		t.Run(string(rt), func(t *testing.T) {
			req := &entity.RequestDescriptor{RequestID: "r4", RequestType: rt, CountryCode: "LK"}

			result := SelectCandidates(req, samplePool())

			assert.Equal(t, []string{"Alpha Mart", "Beta Both", "Zeta Couriers"}, names(result))
			for _, c := range result.Candidates {
				assert.Equal(t, entity.ReasonTypeFiltered, c.Reason)
			}
		})
	}
}

func TestSelectCandidates_RentRanksAllVerifiedBusinesses(t *testing.T) {
	pool := []*entity.BusinessRecord{
		approved("Zulu General", "LK", nil),
		approved("Able General", "LK", nil),
		approved("Mike Sub", "LK", func(b *entity.BusinessRecord) { b.Categories = []string{"sub-9"} }),
		approved("Yankee Cat", "LK", func(b *entity.BusinessRecord) { b.Categories = []string{"x", "cat-1"} }),
		approved("Bravo Cat", "LK", func(b *entity.BusinessRecord) { b.Categories = []string{"cat-1", "sub-9"} }),
		approved("Foreign Cat", "IN", func(b *entity.BusinessRecord) { b.Categories = []string{"cat-1"} }),
		approved("Pending Cat", "LK", func(b *entity.BusinessRecord) {
			b.Categories = []string{"cat-1"}
			b.Status = entity.StatusPending
		}),
	}
	req := &entity.RequestDescriptor{
		RequestID:     "r5",
		RequestType:   entity.RequestTypeRent,
		CategoryID:    "cat-1",
		SubcategoryID: "sub-9",
		CountryCode:   "LK",
	}

	result := SelectCandidates(req, pool)

	require.Len(t, result.Candidates, 5)
	assert.Equal(t, entity.RuleRankedAll, result.Rule)
	assert.Equal(t, []string{"Bravo Cat", "Yankee Cat", "Mike Sub", "Able General", "Zulu General"}, names(result))
	assert.Equal(t, entity.ReasonCategoryMatch, result.Candidates[0].Reason)
	assert.Equal(t, entity.ReasonCategoryMatch, result.Candidates[1].Reason)
	assert.Equal(t, entity.ReasonSubcategoryMatch, result.Candidates[2].Reason)
	assert.Equal(t, entity.ReasonGeneralBusiness, result.Candidates[3].Reason)
	assert.Equal(t, entity.ReasonGeneralBusiness, result.Candidates[4].Reason)
}

func TestSelectCandidates_EmptySubcategoryNeverMatches(t *testing.T) {
	pool := []*entity.BusinessRecord{
		approved("Only", "LK", func(b *entity.BusinessRecord) { b.Categories = []string{""} }),
	}
	req := &entity.RequestDescriptor{RequestID: "r6", RequestType: entity.RequestTypeRent, CategoryID: "cat-1", CountryCode: "LK"}

	result := SelectCandidates(req, pool)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, entity.ReasonGeneralBusiness, result.Candidates[0].Reason)
}

func TestSelectCandidates_NameTieBrokenByUserID(t *testing.T) {
	a := approved("Same", "LK", seller)
	b := approved("Same", "LK", seller)
	a.UserID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	b.UserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	req := &entity.RequestDescriptor{RequestID: "r7", RequestType: entity.RequestTypePrice, CountryCode: "LK"}

	result := SelectCandidates(req, []*entity.BusinessRecord{a, b})

	assert.Equal(t, []uuid.UUID{b.UserID, a.UserID}, result.UserIDs())
}

func TestSelectCandidates_EmptyPool(t *testing.T) {
	req := &entity.RequestDescriptor{RequestID: "r8", RequestType: entity.RequestTypeItem, CountryCode: "LK"}

	result := SelectCandidates(req, nil)

	assert.NotNil(t, result.Candidates)
	assert.Empty(t, result.Candidates)
}
