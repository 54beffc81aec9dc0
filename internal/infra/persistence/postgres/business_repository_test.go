package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var businessColumns = []string{
	"business_id", "user_id", "business_name", "business_email", "business_type_id",
	"business_type", "business_category", "categories", "country", "is_verified", "status",
	"created_at", "updated_at", "business_type_name",
}

func TestBusinessRepository_FindBusinessByUserID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	typeID := uuid.New()
	now := time.Now()

	t.Run("maps joined lookup name and categories", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		rows := sqlmock.NewRows(businessColumns).AddRow(
			businessID.String(), userID.String(), "Alpha Mart", "alpha@example.com", typeID.String(),
			"both", "", []byte(`["cat-1","sub-2"]`), "NG", true, "approved",
			now, now, "Product Seller",
		)
		mock.ExpectQuery(`LEFT JOIN business_types bt ON bt.id = b.business_type_id\s+WHERE b.user_id = \$1 LIMIT 1`).
			WithArgs(userID).
			WillReturnRows(rows)

		got, err := repo.FindBusinessByUserID(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, businessID, got.BusinessID)
		assert.Equal(t, "Alpha Mart", got.BusinessName)
		assert.Equal(t, "Product Seller", got.BusinessTypeName)
		assert.Equal(t, entity.LegacyTypeBoth, got.LegacyType)
		assert.Equal(t, []string{"cat-1", "sub-2"}, got.Categories)
		assert.Equal(t, entity.StatusApproved, got.Status)
		require.NotNil(t, got.BusinessTypeID)
		assert.Equal(t, typeID, *got.BusinessTypeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing lookup row leaves the name empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		rows := sqlmock.NewRows(businessColumns).AddRow(
			businessID.String(), userID.String(), "Legacy Shop", "legacy@example.com", nil,
			"product_selling", "retail", []byte(`[]`), "NG", true, "approved",
			now, now, nil,
		)
		mock.ExpectQuery(`FROM businesses b`).WillReturnRows(rows)

		got, err := repo.FindBusinessByUserID(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, got.BusinessTypeName)
		assert.Nil(t, got.BusinessTypeID)
		assert.Equal(t, "retail", got.LegacyCategory)
		assert.Empty(t, got.Categories)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`FROM businesses b`).WillReturnRows(sqlmock.NewRows(businessColumns))

		got, err := repo.FindBusinessByUserID(ctx, userID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		dbErr := errors.New("connection reset")
		mock.ExpectQuery(`FROM businesses b`).WillReturnError(dbErr)

		got, err := repo.FindBusinessByUserID(ctx, userID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, repository.ErrBusinessNotFound)
	})
}

func TestBusinessRepository_FindVerifiedBusinessesByCountry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("filters approved businesses by upper-cased country", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		rows := sqlmock.NewRows(businessColumns).
			AddRow(uuid.NewString(), uuid.NewString(), "Alpha Mart", "a@example.com", nil, "product_selling", "", []byte(`[]`), "NG", true, "approved", now, now, nil).
			AddRow(uuid.NewString(), uuid.NewString(), "Zeta Couriers", "z@example.com", nil, "", "delivery", []byte(`["cat-9"]`), "NG", true, "approved", now, now, nil)
		mock.ExpectQuery(`WHERE b.is_verified = TRUE AND b.status = \$1 AND b.country = \$2\s+ORDER BY b.business_name ASC`).
			WithArgs("approved", "NG").
			WillReturnRows(rows)

		got, err := repo.FindVerifiedBusinessesByCountry(ctx, " ng ")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alpha Mart", got[0].BusinessName)
		assert.Equal(t, "Zeta Couriers", got[1].BusinessName)
		assert.Equal(t, []string{"cat-9"}, got[1].Categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty pool is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`FROM businesses b`).WillReturnRows(sqlmock.NewRows(businessColumns))

		got, err := repo.FindVerifiedBusinessesByCountry(ctx, "KE")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`FROM businesses b`).WillReturnError(errors.New("timeout"))

		got, err := repo.FindVerifiedBusinessesByCountry(ctx, "KE")

		assert.Nil(t, got)
		assert.Error(t, err)
	})
}

func TestBusinessRepository_UpdateBusinessCategories(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates the owner's row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		mock.ExpectExec(`UPDATE "businesses" SET "categories"=\$1,"updated_at"=\$2 WHERE user_id = \$3`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateBusinessCategories(ctx, userID, []string{"cat-1", "cat-2"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBusinessRepository(db)

		mock.ExpectExec(`UPDATE "businesses"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateBusinessCategories(ctx, userID, []string{"cat-1"})

		assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
	})
}

func TestBusinessRepository_FindBusinessTypes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBusinessRepository(db)

	deliveryID, sellerID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "business_types" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(deliveryID.String(), "Delivery Service").
			AddRow(sellerID.String(), "Product Seller"))

	got, err := repo.FindBusinessTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []*entity.BusinessType{
		{ID: deliveryID, Name: "Delivery Service"},
		{ID: sellerID, Name: "Product Seller"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
