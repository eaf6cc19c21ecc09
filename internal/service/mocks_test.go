package service

import (
	"context"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
)

// mockStudentStore держит студентов и подгруппы в памяти
type mockStudentStore struct {
	students  []*model.Student
	subgroups []*model.Subgroup
	telegrams map[int64]int // telegram_id -> student_id
}

func (m *mockStudentStore) List(context.Context) ([]*model.Student, error) {
	return m.students, nil
}

func (m *mockStudentStore) ListSubgroups(context.Context) ([]*model.Subgroup, error) {
	return m.subgroups, nil
}

func (m *mockStudentStore) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, student := range m.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, nil
}

func (m *mockStudentStore) GetByPhone(_ context.Context, phone string) (*model.Student, error) {
	for _, student := range m.students {
		if student.TelegramPhone == phone {
			return student, nil
		}
	}
	return nil, nil
}

func (m *mockStudentStore) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Student, error) {
	studentID, ok := m.telegrams[telegramID]
	if !ok {
		return nil, nil
	}
	return m.GetByID(ctx, studentID)
}

// mockTelegramStore держит привязки Telegram аккаунтов в памяти
type mockTelegramStore struct {
	telegrams []*model.Telegram
}

func (m *mockTelegramStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.Telegram, error) {
	for _, telegram := range m.telegrams {
		if telegram.TelegramID == telegramID {
			return telegram, nil
		}
	}
	return nil, nil
}

func (m *mockTelegramStore) Create(_ context.Context, telegram *model.Telegram) error {
	telegram.ID = len(m.telegrams) + 1
	m.telegrams = append(m.telegrams, telegram)
	return nil
}

func (m *mockTelegramStore) UpdateSettings(_ context.Context, telegram *model.Telegram) error {
	for i, existing := range m.telegrams {
		if existing.TelegramID == telegram.TelegramID {
			m.telegrams[i] = telegram
			return nil
		}
	}
	return nil
}

// mockWebAuthStore держит учётные данные веб-интерфейса в памяти
type mockWebAuthStore struct {
	auths []*model.WebAuthentication
}

func (m *mockWebAuthStore) GetByLogin(_ context.Context, login string) (*model.WebAuthentication, error) {
	for _, auth := range m.auths {
		if auth.Login == login {
			return auth, nil
		}
	}
	return nil, nil
}

// mockSubjectSource держит предметы в памяти
type mockSubjectSource struct {
	subjects []*model.Subject
}

func (m *mockSubjectSource) List(context.Context) ([]*model.Subject, error) {
	return m.subjects, nil
}

// mockScheduleStore реализует источники движка расписания поверх слайсов
type mockScheduleStore struct {
	couples    []*model.Couple
	exceptions []*model.CoupleDate
	additional []*model.AdditionalCouple
	times      []*model.CoupleTime
}

func (m *mockScheduleStore) ListByWeekday(_ context.Context, weekday int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range m.couples {
		if couple.DayOfWeekID == weekday {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockScheduleStore) ListBySubjectAndType(_ context.Context, subjectID, subjectTypeID int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range m.couples {
		if couple.SubjectID == subjectID && couple.SubjectTypeID == subjectTypeID {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockScheduleStore) MapByCoupleIDs(_ context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error) {
	result := make(map[int][]*model.CoupleDate)
	for _, exception := range m.exceptions {
		for _, id := range coupleIDs {
			if exception.CoupleID == id {
				result[id] = append(result[id], exception)
			}
		}
	}
	return result, nil
}

func (m *mockScheduleStore) ListByDate(_ context.Context, date time.Time) ([]*model.AdditionalCouple, error) {
	var result []*model.AdditionalCouple
	for _, couple := range m.additional {
		if couple.Date.Equal(date) {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (m *mockScheduleStore) listAdditionalBySubjectAndType(subjectID, subjectTypeID int) []*model.AdditionalCouple {
	var result []*model.AdditionalCouple
	for _, couple := range m.additional {
		if couple.SubjectID == subjectID && couple.SubjectTypeID == subjectTypeID {
			result = append(result, couple)
		}
	}
	return result
}

func (m *mockScheduleStore) ListOrdered(context.Context) ([]*model.CoupleTime, error) {
	return m.times, nil
}

// mockAdditionalSource оборачивает mockScheduleStore под AdditionalCoupleSource
type mockAdditionalSource struct {
	store *mockScheduleStore
}

func (m *mockAdditionalSource) ListByDate(ctx context.Context, date time.Time) ([]*model.AdditionalCouple, error) {
	return m.store.ListByDate(ctx, date)
}

func (m *mockAdditionalSource) ListBySubjectAndType(_ context.Context, subjectID, subjectTypeID int) ([]*model.AdditionalCouple, error) {
	return m.store.listAdditionalBySubjectAndType(subjectID, subjectTypeID), nil
}

// mockWorkDeadlineStore держит дедлайны в памяти
type mockWorkDeadlineStore struct {
	deadlines []*model.WorkDeadline
}

func (m *mockWorkDeadlineStore) List(context.Context) ([]*model.WorkDeadline, error) {
	return m.deadlines, nil
}

func (m *mockWorkDeadlineStore) ListDueBetween(_ context.Context, from, to time.Time) ([]*model.WorkDeadline, error) {
	var result []*model.WorkDeadline
	for _, deadline := range m.deadlines {
		if deadline.Deadline == nil {
			continue
		}
		if !deadline.Deadline.Before(from) && !deadline.Deadline.After(to) {
			result = append(result, deadline)
		}
	}
	return result, nil
}

func (m *mockWorkDeadlineStore) Create(_ context.Context, deadline *model.WorkDeadline) error {
	deadline.ID = len(m.deadlines) + 1
	m.deadlines = append(m.deadlines, deadline)
	return nil
}

func (m *mockWorkDeadlineStore) Update(_ context.Context, deadline *model.WorkDeadline) error {
	for i, existing := range m.deadlines {
		if existing.ID == deadline.ID {
			m.deadlines[i] = deadline
			return nil
		}
	}
	return nil
}

func (m *mockWorkDeadlineStore) Delete(_ context.Context, id int) error {
	for i, existing := range m.deadlines {
		if existing.ID == id {
			m.deadlines = append(m.deadlines[:i], m.deadlines[i+1:]...)
			return nil
		}
	}
	return nil
}
