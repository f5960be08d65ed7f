package usecase

import (
	"context"
	"time"

	"compliance-ai-backend/internal/domain"
)

type healthUsecase struct {
	now func() time.Time
}

func NewHealthUsecase(now func() time.Time) domain.HealthUsecase {
	if now == nil {
		now = time.Now
	}
	return &healthUsecase{now: now}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:    "ok",
		Timestamp: u.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
