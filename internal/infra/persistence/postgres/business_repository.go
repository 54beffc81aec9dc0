package postgres

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const businessWithTypeSelect = `
	SELECT b.*, bt.name AS business_type_name
	FROM businesses b
	LEFT JOIN business_types bt ON bt.id = b.business_type_id`

// businessRepository implements repository.BusinessRepository.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (repo *businessRepository) FindBusinessByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessRecord, error) {
	var rows []model.BusinessWithTypeRow

	if err := repo.db.WithContext(ctx).
		Raw(businessWithTypeSelect+` WHERE b.user_id = ? LIMIT 1`, userID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find business by user ID")
	}

	if len(rows) == 0 {
		return nil, repository.ErrBusinessNotFound
	}

	return toBusinessDomain(&rows[0]), nil
}

// FindVerifiedBusinessesByCountry only filters on verification and country. Which of those
// businesses a request reaches is decided in Go by policy.SelectCandidates.
func (repo *businessRepository) FindVerifiedBusinessesByCountry(ctx context.Context, countryCode string) ([]*entity.BusinessRecord, error) {
	var rows []model.BusinessWithTypeRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(businessWithTypeSelect+`
	WHERE b.is_verified = TRUE AND b.status = ? AND b.country = ?
	ORDER BY b.business_name ASC, b.user_id ASC`,
			string(entity.StatusApproved), strings.ToUpper(strings.TrimSpace(countryCode))).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find verified businesses by country")
	}

	businesses := make([]*entity.BusinessRecord, 0, len(rows))
	for i := range rows {
		businesses = append(businesses, toBusinessDomain(&rows[i]))
	}

	return businesses, nil
}

func (repo *businessRepository) UpdateBusinessCategories(ctx context.Context, userID uuid.UUID, categories []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("user_id = ?", userID).
		Update("categories", datatypes.NewJSONSlice(categories))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business categories")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) FindBusinessTypes(ctx context.Context) ([]*entity.BusinessType, error) {
	var typeModels []*model.BusinessTypeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&typeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find business types")
	}

	types := make([]*entity.BusinessType, 0, len(typeModels))
	for _, typeM := range typeModels {
		types = append(types, &entity.BusinessType{ID: typeM.ID, Name: typeM.Name})
	}

	return types, nil
}

// --- Mapper Functions ---

func toBusinessDomain(row *model.BusinessWithTypeRow) *entity.BusinessRecord {
	if row == nil {
		return nil
	}

	categories := []string(row.Categories)
	if categories == nil {
		categories = []string{}
	}

	var typeName string
	if row.BusinessTypeName != nil {
		typeName = *row.BusinessTypeName
	}

	return &entity.BusinessRecord{
		BusinessID:       row.BusinessID,
		UserID:           row.UserID,
		BusinessName:     row.BusinessName,
		BusinessEmail:    row.BusinessEmail,
		BusinessTypeID:   row.BusinessTypeID,
		BusinessTypeName: typeName,
		LegacyType:       entity.LegacyBusinessType(row.BusinessType),
		LegacyCategory:   row.BusinessCategory,
		Categories:       categories,
		Country:          row.Country,
		IsVerified:       row.IsVerified,
		Status:           entity.VerificationStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
