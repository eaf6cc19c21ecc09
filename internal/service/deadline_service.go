package service

import (
	"context"
	"fmt"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"go.uber.org/zap"
)

// WorkDeadlineStore управляет дедлайнами работ
type WorkDeadlineStore interface {
	List(ctx context.Context) ([]*model.WorkDeadline, error)
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*model.WorkDeadline, error)
	Create(ctx context.Context, deadline *model.WorkDeadline) error
	Update(ctx context.Context, deadline *model.WorkDeadline) error
	Delete(ctx context.Context, id int) error
}

// DeadlineService управляет дедлайнами работ и отбирает ближайшие для напоминаний
type DeadlineService struct {
	deadlines WorkDeadlineStore
	logger    *zap.Logger

	now func() time.Time
}

// NewDeadlineService создаёт новый сервис дедлайнов
func NewDeadlineService(deadlines WorkDeadlineStore, logger *zap.Logger) *DeadlineService {
	return &DeadlineService{
		deadlines: deadlines,
		logger:    logger,
		now:       time.Now,
	}
}

// List возвращает все дедлайны, ближайшие первыми
func (s *DeadlineService) List(ctx context.Context) ([]*model.WorkDeadline, error) {
	return s.deadlines.List(ctx)
}

// Upcoming возвращает дедлайны, наступающие в ближайшие days дней
func (s *DeadlineService) Upcoming(ctx context.Context, days int) ([]*model.WorkDeadline, error) {
	today := schedule.DateOnly(s.now())

	deadlines, err := s.deadlines.ListDueBetween(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("list upcoming deadlines: %w", err)
	}

	return deadlines, nil
}

// Create создаёт новый дедлайн
func (s *DeadlineService) Create(ctx context.Context, deadline *model.WorkDeadline) error {
	if err := s.deadlines.Create(ctx, deadline); err != nil {
		return err
	}

	s.logger.Info("Work deadline created",
		zap.Int("deadline_id", deadline.ID),
		zap.String("name", deadline.Name),
	)
	return nil
}

// Update обновляет дедлайн
func (s *DeadlineService) Update(ctx context.Context, deadline *model.WorkDeadline) error {
	return s.deadlines.Update(ctx, deadline)
}

// Delete удаляет дедлайн
func (s *DeadlineService) Delete(ctx context.Context, id int) error {
	return s.deadlines.Delete(ctx, id)
}
