package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

// dispatchRepository implements repository.DispatchRepository.
type dispatchRepository struct {
	db *gorm.DB
}

// NewDispatchRepository is the constructor for dispatchRepository.
func NewDispatchRepository(db *gorm.DB) repository.DispatchRepository {
	return &dispatchRepository{db: db}
}

func (repo *dispatchRepository) CreateDispatch(ctx context.Context, dispatch *entity.RequestDispatch) error {
	dispatchM := fromDispatchDomain(dispatch)

	if err := repo.db.WithContext(ctx).Create(dispatchM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create request dispatch")
	}

	dispatch.ID = dispatchM.ID
	dispatch.CreatedAt = dispatchM.CreatedAt
	dispatch.UpdatedAt = dispatchM.UpdatedAt

	return nil
}

func (repo *dispatchRepository) FindDispatchByID(ctx context.Context, id uuid.UUID) (*entity.RequestDispatch, error) {
	var dispatchM model.RequestDispatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dispatchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDispatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find request dispatch by ID")
	}

	return toDispatchDomain(&dispatchM), nil
}

func (repo *dispatchRepository) UpdateDispatchResult(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestDispatchModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_sent":   totalSent,
			"total_failed": totalFailed,
			"status":       string(entity.DispatchDelivered),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request dispatch result")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDispatchNotFound
	}

	return nil
}

func (repo *dispatchRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// --- Mapper Functions ---

func toDispatchDomain(data *model.RequestDispatchModel) *entity.RequestDispatch {
	if data == nil {
		return nil
	}

	return &entity.RequestDispatch{
		ID:             data.ID,
		RequestID:      data.RequestID,
		RequestType:    entity.RequestType(data.RequestType),
		CountryCode:    data.CountryCode,
		Rule:           entity.TargetingRule(data.Rule),
		CandidateCount: data.CandidateCount,
		Status:         entity.DispatchStatus(data.Status),
		TotalSent:      data.TotalSent,
		TotalFailed:    data.TotalFailed,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDispatchDomain(data *entity.RequestDispatch) *model.RequestDispatchModel {
	if data == nil {
		return nil
	}

	return &model.RequestDispatchModel{
		ID:             data.ID,
		RequestID:      data.RequestID,
		RequestType:    string(data.RequestType),
		CountryCode:    data.CountryCode,
		Rule:           string(data.Rule),
		CandidateCount: data.CandidateCount,
		Status:         string(data.Status),
		TotalSent:      data.TotalSent,
		TotalFailed:    data.TotalFailed,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	return &model.NotificationLogModel{
		ID:           data.ID,
		DispatchID:   data.DispatchID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Reason:       string(data.Reason),
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
