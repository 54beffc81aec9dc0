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
)

func TestDispatchRepository_CreateDispatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDispatchRepository(db)

	generatedID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "request_dispatches"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID.String()))

	dispatch := &entity.RequestDispatch{
		RequestID:      "req-1",
		RequestType:    entity.RequestTypeDelivery,
		CountryCode:    "NG",
		Rule:           entity.RuleDeliveryOnly,
		CandidateCount: 2,
		Status:         entity.DispatchPublished,
	}
	err := repo.CreateDispatch(context.Background(), dispatch)

	require.NoError(t, err)
	assert.Equal(t, generatedID, dispatch.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatchRepository_FindDispatchByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		now := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "request_dispatches" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "request_id", "request_type", "country_code", "rule", "candidate_count",
				"status", "total_sent", "total_failed", "created_at", "updated_at",
			}).AddRow(id.String(), "req-1", "rent", "KE", "ranked_all", 3, "delivered", 4, 1, now, now))

		got, err := repo.FindDispatchByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, entity.RequestTypeRent, got.RequestType)
		assert.Equal(t, entity.RuleRankedAll, got.Rule)
		assert.Equal(t, entity.DispatchDelivered, got.Status)
		assert.Equal(t, 4, got.TotalSent)
		assert.Equal(t, 1, got.TotalFailed)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		mock.ExpectQuery(`FROM "request_dispatches"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := repo.FindDispatchByID(ctx, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrDispatchNotFound)
	})
}

func TestDispatchRepository_UpdateDispatchResult(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("marks the dispatch delivered", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		mock.ExpectExec(`UPDATE "request_dispatches" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateDispatchResult(ctx, id, 5, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown dispatch", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		mock.ExpectExec(`UPDATE "request_dispatches" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateDispatchResult(ctx, id, 0, 0), repository.ErrDispatchNotFound)
	})
}

func TestDispatchRepository_BatchCreateNotificationLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input skips the insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		require.NoError(t, repo.BatchCreateNotificationLogs(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is returned", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewDispatchRepository(db)

		mock.ExpectQuery(`INSERT INTO "notification_logs"`).WillReturnError(errors.New("disk full"))

		err := repo.BatchCreateNotificationLogs(ctx, []*entity.NotificationLog{{
			DispatchID: uuid.New(),
			UserID:     uuid.New(),
			DeviceID:   uuid.New(),
			Reason:     entity.ReasonDeliveryService,
			Status:     entity.NotificationLogSent,
			SentAt:     time.Now(),
		}})

		assert.Error(t, err)
	})
}
