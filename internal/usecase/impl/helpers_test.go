package impl

import (
	"io"
	"log/slog"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func verifiedBusiness(name, country string, mutate func(*entity.BusinessRecord)) *entity.BusinessRecord {
	b := &entity.BusinessRecord{
		BusinessID:   uuid.New(),
		UserID:       uuid.New(),
		BusinessName: name,
		Country:      country,
		IsVerified:   true,
		Status:       entity.StatusApproved,
	}
	if mutate != nil {
		mutate(b)
	}

	return b
}
