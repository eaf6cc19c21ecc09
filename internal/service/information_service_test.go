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

func newTestInformationService(store *mockScheduleStore, subjects *mockSubjectSource, students *mockStudentStore) *InformationService {
	counter := schedule.NewCounter(store, store, &mockAdditionalSource{store: store}, zap.NewNop())
	svc := NewInformationService(subjects, students, counter, zap.NewNop())
	svc.now = func() time.Time { return date(2024, time.March, 4) }
	return svc
}

func TestInformationServiceSubjects(t *testing.T) {
	store := &mockScheduleStore{
		couples: []*model.Couple{
			{
				ID:            1,
				DayOfWeekID:   1,
				SubjectID:     1,
				SubjectTypeID: model.SubjectTypeLaboratory,
				StartDate:     ptr(date(2024, time.March, 4)),
				EndDate:       ptr(date(2024, time.March, 18)),
			},
		},
	}
	subjects := &mockSubjectSource{
		subjects: []*model.Subject{
			{ID: 1, Name: "Програмування", ShortName: "Прог", LaboratoryCount: 8, PracticalCount: 0},
		},
	}

	svc := newTestInformationService(store, subjects, &mockStudentStore{})

	result, err := svc.GetSubjectsInformation(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "Прог", result[0].ShortName)
	assert.Equal(t, 8, result[0].LaboratoryCount)
	// Еженедельная пара 4, 11 и 18 марта
	assert.Equal(t, 3, result[0].LaboratoryDaysCount)
	assert.Equal(t, 0, result[0].PracticalDaysCount)
	assert.Equal(t, 0, result[0].LecturesDaysCount)
}

func TestInformationServiceStudents(t *testing.T) {
	students := &mockStudentStore{
		students: []*model.Student{
			{ID: 1, Index: 1, Name: "Олена", Surname: "Іванова", SubgroupID: ptr(2)},
			{ID: 2, Index: 2, Name: "Петро", Surname: "Коваль"},
		},
		subgroups: []*model.Subgroup{
			{ID: 1, Name: "1 підгрупа"},
			{ID: 2, Name: "2 підгрупа"},
		},
	}

	svc := newTestInformationService(&mockScheduleStore{}, &mockSubjectSource{}, students)

	result, err := svc.GetStudentsInformation(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "2 підгрупа", result[0].Subgroup)
	assert.Empty(t, result[1].Subgroup)
}

func TestInformationServiceSubjectDayCount(t *testing.T) {
	store := &mockScheduleStore{
		couples: []*model.Couple{
			{
				ID:            1,
				DayOfWeekID:   2,
				SubjectID:     1,
				SubjectTypeID: model.SubjectTypeLecture,
				StartDate:     ptr(date(2024, time.March, 5)),
				EndDate:       ptr(date(2024, time.March, 12)),
			},
		},
	}

	svc := newTestInformationService(store, &mockSubjectSource{}, &mockStudentStore{})

	count, err := svc.GetSubjectDayCount(context.Background(), 1, model.SubjectTypeLecture)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
