package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Counter считает количество календарных дней занятий по предмету и типу
type Counter struct {
	couples    CoupleSource
	exceptions ExceptionSource
	additional AdditionalCoupleSource
	logger     *zap.Logger
}

// NewCounter создаёт новый счётчик дней занятий
func NewCounter(
	couples CoupleSource,
	exceptions ExceptionSource,
	additional AdditionalCoupleSource,
	logger *zap.Logger,
) *Counter {
	return &Counter{
		couples:    couples,
		exceptions: exceptions,
		additional: additional,
		logger:     logger,
	}
}

// CountDays возвращает число уникальных календарных дней начиная с referenceDate,
// в которые у предмета проходит занятие указанного типа. Считаются дни, а не пары:
// две пары одного типа в один день дают один день.
func (c *Counter) CountDays(ctx context.Context, subjectID, subjectTypeID int, referenceDate time.Time) (int, error) {
	referenceDate = DateOnly(referenceDate)

	couples, err := c.couples.ListBySubjectAndType(ctx, subjectID, subjectTypeID)
	if err != nil {
		return 0, fmt.Errorf("list couples by subject and type: %w", err)
	}

	coupleIDs := make([]int, 0, len(couples))
	for _, couple := range couples {
		coupleIDs = append(coupleIDs, couple.ID)
	}

	exceptions, err := c.exceptions.MapByCoupleIDs(ctx, coupleIDs)
	if err != nil {
		return 0, fmt.Errorf("map couple exceptions: %w", err)
	}

	days := make(map[time.Time]struct{})

	for _, couple := range couples {
		added := make(map[time.Time]struct{})
		removed := make(map[time.Time]struct{})

		for _, exception := range exceptions[couple.ID] {
			date := DateOnly(exception.Date)
			if exception.IsRemovedDate {
				removed[date] = struct{}{}
			} else {
				added[date] = struct{}{}
			}
		}

		// Регулярные даты шаблона с шагом в одну или две недели.
		// Убирающее исключение гасит только даты своего шаблона,
		// добавляющее имеет приоритет над убирающим.
		if couple.StartDate != nil && couple.EndDate != nil {
			step := 7
			if couple.IsRolling {
				step = 14
			}

			endDate := DateOnly(*couple.EndDate)
			for date := DateOnly(*couple.StartDate); !date.After(endDate); date = date.AddDate(0, 0, step) {
				if date.Before(referenceDate) {
					continue
				}
				if _, isRemoved := removed[date]; isRemoved {
					if _, isAdded := added[date]; !isAdded {
						continue
					}
				}
				days[date] = struct{}{}
			}
		}

		for date := range added {
			days[date] = struct{}{}
		}
	}

	additionalCouples, err := c.additional.ListBySubjectAndType(ctx, subjectID, subjectTypeID)
	if err != nil {
		return 0, fmt.Errorf("list additional couples by subject and type: %w", err)
	}

	for _, additional := range additionalCouples {
		days[DateOnly(additional.Date)] = struct{}{}
	}

	return len(days), nil
}
