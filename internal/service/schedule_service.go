package service

import (
	"context"
	"fmt"
	"time"

	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"go.uber.org/zap"
)

// StudentSource поставляет студентов для резолвинга подгруппы
type StudentSource interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Student, error)
}

// ScheduleService отдаёт боту расписание на день и неделю
type ScheduleService struct {
	resolver *schedule.Resolver
	students StudentSource
	logger   *zap.Logger
}

// NewScheduleService создаёт новый сервис расписания
func NewScheduleService(resolver *schedule.Resolver, students StudentSource, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		resolver: resolver,
		students: students,
		logger:   logger,
	}
}

// GetDaySchedule возвращает расписание студента на дату.
// Если Telegram аккаунт не привязан ни к одному студенту, возвращает nil
func (s *ScheduleService) GetDaySchedule(ctx context.Context, telegramID int64, date time.Time) (*dto.ScheduleDay, error) {
	student, err := s.students.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get student by telegram id: %w", err)
	}
	if student == nil {
		s.logger.Debug("Day schedule requested by unknown telegram id", zap.Int64("telegram_id", telegramID))
		return nil, nil
	}

	day, err := s.resolver.ResolveDay(ctx, student.SubgroupID, date)
	if err != nil {
		return nil, fmt.Errorf("resolve day: %w", err)
	}

	return &dto.ScheduleDay{
		Date:    day.Date.Format("02.01"),
		Couples: day.Couples,
	}, nil
}

// GetWeekSchedule возвращает расписание студента на календарную неделю,
// содержащую дату. Неделя всегда начинается с понедельника
func (s *ScheduleService) GetWeekSchedule(ctx context.Context, telegramID int64, date time.Time) (*dto.ScheduleWeek, error) {
	student, err := s.students.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get student by telegram id: %w", err)
	}
	if student == nil {
		s.logger.Debug("Week schedule requested by unknown telegram id", zap.Int64("telegram_id", telegramID))
		return nil, nil
	}

	week, err := s.resolver.ResolveWeek(ctx, student.SubgroupID, date)
	if err != nil {
		return nil, fmt.Errorf("resolve week: %w", err)
	}

	scheduleWeek := &dto.ScheduleWeek{
		CoupleTimes:  week.CoupleTimes,
		ScheduleDays: make([]dto.ScheduleDay, 0, len(week.Days)),
	}

	for _, day := range week.Days {
		scheduleWeek.ScheduleDays = append(scheduleWeek.ScheduleDays, dto.ScheduleDay{
			Date:    day.Date.Format("02.01"),
			Couples: day.Couples,
		})
	}

	return scheduleWeek, nil
}
