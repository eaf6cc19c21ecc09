package schedule

import (
	"context"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
)

// In-memory источники данных для тестов resolver и counter

type mockCoupleSource struct {
	couples []*model.Couple
}

func (m *mockCoupleSource) ListByWeekday(_ context.Context, weekday int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range m.couples {
		if couple.DayOfWeekID == weekday {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockCoupleSource) ListBySubjectAndType(_ context.Context, subjectID, subjectTypeID int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range m.couples {
		if couple.SubjectID == subjectID && couple.SubjectTypeID == subjectTypeID {
			result = append(result, couple)
		}
	}
	return result, nil
}

type mockExceptionSource struct {
	exceptions []*model.CoupleDate
}

func (m *mockExceptionSource) MapByCoupleIDs(_ context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error) {
	wanted := make(map[int]bool, len(coupleIDs))
	for _, id := range coupleIDs {
		wanted[id] = true
	}

	result := make(map[int][]*model.CoupleDate)
	for _, exception := range m.exceptions {
		if wanted[exception.CoupleID] {
			result[exception.CoupleID] = append(result[exception.CoupleID], exception)
		}
	}
	return result, nil
}

type mockAdditionalCoupleSource struct {
	couples []*model.AdditionalCouple
}

func (m *mockAdditionalCoupleSource) ListByDate(_ context.Context, date time.Time) ([]*model.AdditionalCouple, error) {
	var result []*model.AdditionalCouple
	for _, couple := range m.couples {
		if DateOnly(couple.Date).Equal(DateOnly(date)) {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockAdditionalCoupleSource) ListBySubjectAndType(_ context.Context, subjectID, subjectTypeID int) ([]*model.AdditionalCouple, error) {
	var result []*model.AdditionalCouple
	for _, couple := range m.couples {
		if couple.SubjectID == subjectID && couple.SubjectTypeID == subjectTypeID {
			result = append(result, couple)
		}
	}
	return result, nil
}

type mockCoupleTimeSource struct {
	times []*model.CoupleTime
}

func (m *mockCoupleTimeSource) ListOrdered(_ context.Context) ([]*model.CoupleTime, error) {
	return m.times, nil
}
