package service

import (
	"context"
	"testing"
	"time"

	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCoupleStore держит шаблоны пар и их исключения в памяти
type mockCoupleStore struct {
	couples map[int]*model.Couple
	dates   map[int][]*model.CoupleDate
	nextID  int
}

func newMockCoupleStore() *mockCoupleStore {
	return &mockCoupleStore{
		couples: make(map[int]*model.Couple),
		dates:   make(map[int][]*model.CoupleDate),
	}
}

func (m *mockCoupleStore) ListForEditor(_ context.Context, weekday int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range m.couples {
		if couple.DayOfWeekID == weekday {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockCoupleStore) GetByID(_ context.Context, id int) (*model.Couple, error) {
	return m.couples[id], nil
}

func (m *mockCoupleStore) Create(_ context.Context, couple *model.Couple) error {
	m.nextID++
	couple.ID = m.nextID
	m.couples[couple.ID] = couple
	return nil
}

func (m *mockCoupleStore) Update(_ context.Context, couple *model.Couple) error {
	m.couples[couple.ID] = couple
	return nil
}

func (m *mockCoupleStore) Delete(_ context.Context, id int) error {
	delete(m.couples, id)
	delete(m.dates, id)
	return nil
}

func (m *mockCoupleStore) MapByCoupleIDs(_ context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error) {
	result := make(map[int][]*model.CoupleDate)
	for _, id := range coupleIDs {
		if dates, ok := m.dates[id]; ok {
			result[id] = dates
		}
	}
	return result, nil
}

func (m *mockCoupleStore) ReplaceForCouple(_ context.Context, coupleID int, dates []*model.CoupleDate) error {
	m.dates[coupleID] = dates
	return nil
}

func TestCoupleServiceCreateAndList(t *testing.T) {
	store := newMockCoupleStore()
	svc := NewCoupleService(store, store, zap.NewNop())

	couple := &dto.Couple{
		Couple: model.Couple{DayOfWeekID: 1, CoupleTimeID: 1, SubjectID: 1, SubjectTypeID: model.SubjectTypeLaboratory},
		AdditionalDates: []dto.CoupleDate{
			{Date: date(2024, time.March, 11)},
		},
		RemovedDates: []dto.CoupleDate{
			{Date: date(2024, time.March, 4)},
		},
	}

	require.NoError(t, svc.Create(context.Background(), couple))
	require.NotZero(t, couple.Couple.ID)

	listed, err := svc.ListByWeekday(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.Len(t, listed[0].AdditionalDates, 1)
	require.Len(t, listed[0].RemovedDates, 1)
	assert.Equal(t, date(2024, time.March, 11), listed[0].AdditionalDates[0].Date)
	assert.Equal(t, date(2024, time.March, 4), listed[0].RemovedDates[0].Date)
}

func TestCoupleServiceUpdateNotFound(t *testing.T) {
	store := newMockCoupleStore()
	svc := NewCoupleService(store, store, zap.NewNop())

	updated, err := svc.Update(context.Background(), &dto.Couple{Couple: model.Couple{ID: 404}})
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := svc.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCoupleServiceDelete(t *testing.T) {
	store := newMockCoupleStore()
	svc := NewCoupleService(store, store, zap.NewNop())

	couple := &dto.Couple{Couple: model.Couple{DayOfWeekID: 2, CoupleTimeID: 1, SubjectID: 1, SubjectTypeID: model.SubjectTypeLecture}}
	require.NoError(t, svc.Create(context.Background(), couple))

	deleted, err := svc.Delete(context.Background(), couple.Couple.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	listed, err := svc.ListByWeekday(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
