package service

import (
	"context"
	"testing"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

var (
	testSubject = &model.Subject{ID: 1, Name: "Програмування", ShortName: "Прог"}
	testLabType = &model.SubjectType{ID: model.SubjectTypeLaboratory, Name: "Лабораторна робота", ShortName: "Лаб"}
	testTime    = &model.CoupleTime{ID: 1, Index: 1, TimeStart: "08:30", TimeEnd: "10:05"}
)

func newTestScheduleService(store *mockScheduleStore, students *mockStudentStore) *ScheduleService {
	resolver := schedule.NewResolver(store, store, &mockAdditionalSource{store: store}, store, zap.NewNop())
	return NewScheduleService(resolver, students, zap.NewNop())
}

func TestScheduleServiceUnknownTelegramID(t *testing.T) {
	svc := newTestScheduleService(&mockScheduleStore{}, &mockStudentStore{})

	day, err := svc.GetDaySchedule(context.Background(), 42, date(2024, time.March, 4))
	require.NoError(t, err)
	assert.Nil(t, day)

	week, err := svc.GetWeekSchedule(context.Background(), 42, date(2024, time.March, 4))
	require.NoError(t, err)
	assert.Nil(t, week)
}

func TestScheduleServiceDaySchedule(t *testing.T) {
	store := &mockScheduleStore{
		couples: []*model.Couple{
			{
				ID:            1,
				DayOfWeekID:   1,
				SubjectID:     testSubject.ID,
				SubjectTypeID: testLabType.ID,
				StartDate:     ptr(date(2024, time.January, 1)),
				Subject:       testSubject,
				SubjectType:   testLabType,
				CoupleTime:    testTime,
			},
		},
		times: []*model.CoupleTime{testTime},
	}
	students := &mockStudentStore{
		students:  []*model.Student{{ID: 5, Name: "Олена"}},
		telegrams: map[int64]int{100: 5},
	}

	svc := newTestScheduleService(store, students)

	day, err := svc.GetDaySchedule(context.Background(), 100, date(2024, time.March, 4))
	require.NoError(t, err)
	require.NotNil(t, day)

	assert.Equal(t, "04.03", day.Date)
	require.Len(t, day.Couples, 1)
	assert.Equal(t, "Прог", day.Couples[0].Subject)
	assert.True(t, day.Couples[0].IsMySubgroup)
}

func TestScheduleServiceWeekSchedule(t *testing.T) {
	store := &mockScheduleStore{
		couples: []*model.Couple{
			{
				ID:            1,
				DayOfWeekID:   3,
				SubjectID:     testSubject.ID,
				SubjectTypeID: testLabType.ID,
				StartDate:     ptr(date(2024, time.January, 1)),
				Subject:       testSubject,
				SubjectType:   testLabType,
				CoupleTime:    testTime,
			},
		},
		times: []*model.CoupleTime{testTime},
	}
	students := &mockStudentStore{
		students:  []*model.Student{{ID: 5, Name: "Олена"}},
		telegrams: map[int64]int{100: 5},
	}

	svc := newTestScheduleService(store, students)

	// Четверг 7 марта: неделя должна начаться с понедельника 4 марта
	week, err := svc.GetWeekSchedule(context.Background(), 100, date(2024, time.March, 7))
	require.NoError(t, err)
	require.NotNil(t, week)

	require.Len(t, week.ScheduleDays, 7)
	assert.Equal(t, "04.03", week.ScheduleDays[0].Date)
	assert.Equal(t, "10.03", week.ScheduleDays[6].Date)
	assert.Equal(t, []string{"08:30-10:05"}, week.CoupleTimes)

	// Пара стоит в среду
	assert.Empty(t, week.ScheduleDays[0].Couples)
	require.Len(t, week.ScheduleDays[2].Couples, 1)
	assert.Equal(t, "Прог", week.ScheduleDays[2].Couples[0].Subject)
}
