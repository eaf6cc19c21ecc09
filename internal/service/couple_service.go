package service

import (
	"context"
	"fmt"

	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"go.uber.org/zap"
)

// CoupleStore управляет шаблонами пар
type CoupleStore interface {
	ListForEditor(ctx context.Context, weekday int) ([]*model.Couple, error)
	GetByID(ctx context.Context, id int) (*model.Couple, error)
	Create(ctx context.Context, couple *model.Couple) error
	Update(ctx context.Context, couple *model.Couple) error
	Delete(ctx context.Context, id int) error
}

// CoupleDateStore управляет исключениями шаблонов
type CoupleDateStore interface {
	MapByCoupleIDs(ctx context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error)
	ReplaceForCouple(ctx context.Context, coupleID int, dates []*model.CoupleDate) error
}

// CoupleService управляет шаблонами пар и их исключениями для редактора расписания
type CoupleService struct {
	couples CoupleStore
	dates   CoupleDateStore
	logger  *zap.Logger
}

// NewCoupleService создаёт новый сервис шаблонов пар
func NewCoupleService(couples CoupleStore, dates CoupleDateStore, logger *zap.Logger) *CoupleService {
	return &CoupleService{
		couples: couples,
		dates:   dates,
		logger:  logger,
	}
}

// ListByWeekday возвращает шаблоны пар на день недели с раздельными
// списками добавленных и убранных дат
func (s *CoupleService) ListByWeekday(ctx context.Context, weekday int) ([]*dto.Couple, error) {
	couples, err := s.couples.ListForEditor(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("list couples: %w", err)
	}

	coupleIDs := make([]int, 0, len(couples))
	for _, couple := range couples {
		coupleIDs = append(coupleIDs, couple.ID)
	}

	exceptions, err := s.dates.MapByCoupleIDs(ctx, coupleIDs)
	if err != nil {
		return nil, fmt.Errorf("map couple dates: %w", err)
	}

	result := make([]*dto.Couple, 0, len(couples))
	for _, couple := range couples {
		coupleDto := &dto.Couple{
			Couple:          *couple,
			AdditionalDates: []dto.CoupleDate{},
			RemovedDates:    []dto.CoupleDate{},
		}

		for _, exception := range exceptions[couple.ID] {
			coupleDate := dto.CoupleDate{ID: exception.ID, Date: exception.Date}
			if exception.IsRemovedDate {
				coupleDto.RemovedDates = append(coupleDto.RemovedDates, coupleDate)
			} else {
				coupleDto.AdditionalDates = append(coupleDto.AdditionalDates, coupleDate)
			}
		}

		result = append(result, coupleDto)
	}

	return result, nil
}

// Create создаёт шаблон пары вместе с исключениями
func (s *CoupleService) Create(ctx context.Context, coupleDto *dto.Couple) error {
	if err := s.couples.Create(ctx, &coupleDto.Couple); err != nil {
		return err
	}

	if err := s.dates.ReplaceForCouple(ctx, coupleDto.Couple.ID, collectDates(coupleDto)); err != nil {
		return err
	}

	s.logger.Info("Couple created",
		zap.Int("couple_id", coupleDto.Couple.ID),
		zap.Int("day_of_week", coupleDto.Couple.DayOfWeekID),
	)
	return nil
}

// Update обновляет шаблон пары, полностью заменяя его исключения.
// Возвращает false, если шаблон не найден
func (s *CoupleService) Update(ctx context.Context, coupleDto *dto.Couple) (bool, error) {
	existing, err := s.couples.GetByID(ctx, coupleDto.Couple.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.couples.Update(ctx, &coupleDto.Couple); err != nil {
		return false, err
	}

	if err := s.dates.ReplaceForCouple(ctx, coupleDto.Couple.ID, collectDates(coupleDto)); err != nil {
		return false, err
	}

	return true, nil
}

// Delete удаляет шаблон пары вместе с исключениями.
// Возвращает false, если шаблон не найден
func (s *CoupleService) Delete(ctx context.Context, id int) (bool, error) {
	existing, err := s.couples.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.couples.Delete(ctx, id); err != nil {
		return false, err
	}

	s.logger.Info("Couple deleted", zap.Int("couple_id", id))
	return true, nil
}

func collectDates(coupleDto *dto.Couple) []*model.CoupleDate {
	dates := make([]*model.CoupleDate, 0, len(coupleDto.AdditionalDates)+len(coupleDto.RemovedDates))

	for _, coupleDate := range coupleDto.AdditionalDates {
		dates = append(dates, &model.CoupleDate{
			Date:          schedule.DateOnly(coupleDate.Date),
			IsRemovedDate: false,
		})
	}
	for _, coupleDate := range coupleDto.RemovedDates {
		dates = append(dates, &model.CoupleDate{
			Date:          schedule.DateOnly(coupleDate.Date),
			IsRemovedDate: true,
		})
	}

	return dates
}
