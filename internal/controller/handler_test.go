package controller

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"github.com/olekhw/deputy_api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBotToken = "test-bot-token"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// testStore реализует источники движка расписания и студентов в памяти
type testStore struct {
	couples   []*model.Couple
	times     []*model.CoupleTime
	students  []*model.Student
	telegrams map[int64]int
	auths     []*model.WebAuthentication
	deadlines []*model.WorkDeadline
}

func (s *testStore) ListByWeekday(_ context.Context, weekday int) ([]*model.Couple, error) {
	var result []*model.Couple
	for _, couple := range s.couples {
		if couple.DayOfWeekID == weekday {
			result = append(result, couple)
		}
	}
	return result, nil
}

func (s *testStore) ListBySubjectAndType(context.Context, int, int) ([]*model.Couple, error) {
	return nil, nil
}

func (s *testStore) MapByCoupleIDs(context.Context, []int) (map[int][]*model.CoupleDate, error) {
	return map[int][]*model.CoupleDate{}, nil
}

func (s *testStore) ListByDate(context.Context, time.Time) ([]*model.AdditionalCouple, error) {
	return nil, nil
}

func (s *testStore) ListOrdered(context.Context) ([]*model.CoupleTime, error) {
	return s.times, nil
}

func (s *testStore) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, student := range s.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, nil
}

func (s *testStore) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Student, error) {
	studentID, ok := s.telegrams[telegramID]
	if !ok {
		return nil, nil
	}
	return s.GetByID(ctx, studentID)
}

func (s *testStore) GetByLogin(_ context.Context, login string) (*model.WebAuthentication, error) {
	for _, auth := range s.auths {
		if auth.Login == login {
			return auth, nil
		}
	}
	return nil, nil
}

func (s *testStore) List(context.Context) ([]*model.WorkDeadline, error) {
	return s.deadlines, nil
}

func (s *testStore) ListDueBetween(context.Context, time.Time, time.Time) ([]*model.WorkDeadline, error) {
	return nil, nil
}

func (s *testStore) Create(context.Context, *model.WorkDeadline) error { return nil }

func (s *testStore) Update(context.Context, *model.WorkDeadline) error { return nil }

func (s *testStore) Delete(context.Context, int) error { return nil }

type additionalSourceStub struct{}

func (additionalSourceStub) ListByDate(context.Context, time.Time) ([]*model.AdditionalCouple, error) {
	return nil, nil
}

func (additionalSourceStub) ListBySubjectAndType(context.Context, int, int) ([]*model.AdditionalCouple, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, store *testStore) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	resolver := schedule.NewResolver(store, store, additionalSourceStub{}, store, logger)
	scheduleService := service.NewScheduleService(resolver, store, logger)
	authService := service.NewAuthService(store, store, "access-secret", "refresh-secret", logger)
	deadlineService := service.NewDeadlineService(store, logger)

	c := NewController(
		scheduleService,
		nil,
		nil,
		authService,
		nil,
		deadlineService,
		nil,
		nil,
		nil,
		nil,
		nil,
		testBotToken,
		logger,
	)

	return c.NewRouter("test"), authService
}

func newScheduleStore() *testStore {
	return &testStore{
		couples: []*model.Couple{
			{
				ID:            1,
				DayOfWeekID:   1,
				SubjectID:     1,
				SubjectTypeID: model.SubjectTypeLaboratory,
				StartDate:     ptr(date(2024, time.January, 1)),
				Subject:       &model.Subject{ID: 1, Name: "Програмування", ShortName: "Прог"},
				SubjectType:   &model.SubjectType{ID: model.SubjectTypeLaboratory, ShortName: "Лаб"},
				CoupleTime:    &model.CoupleTime{ID: 1, Index: 1, TimeStart: "08:30", TimeEnd: "10:05"},
			},
		},
		times:     []*model.CoupleTime{{ID: 1, Index: 1, TimeStart: "08:30", TimeEnd: "10:05"}},
		students:  []*model.Student{{ID: 5, Name: "Олена"}},
		telegrams: map[int64]int{100: 5},
	}
}

func TestBotTokenMiddleware(t *testing.T) {
	router, _ := newTestRouter(t, newScheduleStore())

	request := httptest.NewRequest(http.MethodGet, "/api/bot/schedule/day?telegramId=100&date=2024-03-04", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request.Header.Set("X-Bot-Token", "wrong")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetDaySchedule(t *testing.T) {
	router, _ := newTestRouter(t, newScheduleStore())

	request := httptest.NewRequest(http.MethodGet, "/api/bot/schedule/day?telegramId=100&date=2024-03-04", nil)
	request.Header.Set("X-Bot-Token", testBotToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var day dto.ScheduleDay
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &day))
	assert.Equal(t, "04.03", day.Date)
	require.Len(t, day.Couples, 1)
	assert.Equal(t, "Прог", day.Couples[0].Subject)
}

func TestGetDayScheduleBadRequest(t *testing.T) {
	router, _ := newTestRouter(t, newScheduleStore())

	request := httptest.NewRequest(http.MethodGet, "/api/bot/schedule/day?telegramId=100&date=04.03.2024", nil)
	request.Header.Set("X-Bot-Token", testBotToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetDayScheduleUnknownTelegramID(t *testing.T) {
	router, _ := newTestRouter(t, newScheduleStore())

	request := httptest.NewRequest(http.MethodGet, "/api/bot/schedule/day?telegramId=404&date=2024-03-04", nil)
	request.Header.Set("X-Bot-Token", testBotToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes())
}

func TestGetWeekSchedule(t *testing.T) {
	router, _ := newTestRouter(t, newScheduleStore())

	// Четверг: неделя всё равно начинается с понедельника
	request := httptest.NewRequest(http.MethodGet, "/api/bot/schedule/week?telegramId=100&date=2024-03-07", nil)
	request.Header.Set("X-Bot-Token", testBotToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var week dto.ScheduleWeek
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &week))
	require.Len(t, week.ScheduleDays, 7)
	assert.Equal(t, "04.03", week.ScheduleDays[0].Date)
	assert.Equal(t, []string{"08:30-10:05"}, week.CoupleTimes)
}

func newAuthStore() *testStore {
	salt := []byte("test-salt")
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte("secret"))

	return &testStore{
		students: []*model.Student{{ID: 5, Name: "Олена"}},
		auths: []*model.WebAuthentication{
			{ID: 1, StudentID: 5, Login: "deputy", PasswordSalt: salt, PasswordHash: mac.Sum(nil)},
		},
	}
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t, newAuthStore())

	body := strings.NewReader(`{"login": "deputy", "password": "secret"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/frontend/auth/login", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var user dto.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, 5, user.StudentID)
	assert.NotEmpty(t, user.JwtToken)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, refreshTokenCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _ := newTestRouter(t, newAuthStore())

	body := strings.NewReader(`{"login": "deputy", "password": "wrong"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/frontend/auth/login", body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJwtMiddleware(t *testing.T) {
	store := newAuthStore()
	store.deadlines = []*model.WorkDeadline{{ID: 1, Name: "Лаб 1"}}
	router, authService := newTestRouter(t, store)

	// Без токена доступ закрыт
	request := httptest.NewRequest(http.MethodGet, "/api/frontend/deadlines", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// С валидным access токеном доступ открыт
	user, _, err := authService.Login(context.Background(), "deputy", "secret")
	require.NoError(t, err)

	request = httptest.NewRequest(http.MethodGet, "/api/frontend/deadlines", nil)
	request.Header.Set("Authorization", "Bearer "+user.JwtToken)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var deadlines []*model.WorkDeadline
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &deadlines))
	require.Len(t, deadlines, 1)
	assert.Equal(t, "Лаб 1", deadlines[0].Name)
}
