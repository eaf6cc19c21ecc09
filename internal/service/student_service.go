package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"go.uber.org/zap"
)

// StudentPhoneSource поставляет студентов по номеру телефона
type StudentPhoneSource interface {
	GetByPhone(ctx context.Context, phone string) (*model.Student, error)
}

// TelegramStore управляет привязками Telegram аккаунтов
type TelegramStore interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Telegram, error)
	Create(ctx context.Context, telegram *model.Telegram) error
	UpdateSettings(ctx context.Context, telegram *model.Telegram) error
}

// StudentService управляет авторизацией студентов в боте и их настройками
type StudentService struct {
	students  StudentPhoneSource
	telegrams TelegramStore
	logger    *zap.Logger
}

// NewStudentService создаёт новый сервис студентов
func NewStudentService(students StudentPhoneSource, telegrams TelegramStore, logger *zap.Logger) *StudentService {
	return &StudentService{
		students:  students,
		telegrams: telegrams,
		logger:    logger,
	}
}

// Authorize привязывает Telegram аккаунт к студенту по номеру телефона.
// Если студент с таким номером не найден, возвращает короткий код ошибки
// для обращения к старосте вместо жёсткой ошибки
func (s *StudentService) Authorize(ctx context.Context, contact *dto.StudentContact) (string, error) {
	student, err := s.students.GetByPhone(ctx, contact.Phone)
	if err != nil {
		return "", fmt.Errorf("get student by phone: %w", err)
	}

	if student == nil {
		code := uuid.NewString()[:8]
		s.logger.Error("Student not found by phone",
			zap.String("code", code),
			zap.String("phone", contact.Phone),
		)
		return code, nil
	}

	telegram := &model.Telegram{
		StudentID:       student.ID,
		TelegramID:      contact.TelegramID,
		Language:        "uk",
		ScheduleCompact: false,
		RemindDeadlines: false,
	}

	if err := s.telegrams.Create(ctx, telegram); err != nil {
		return "", fmt.Errorf("create telegram: %w", err)
	}

	s.logger.Info("Telegram account authorized",
		zap.Int64("telegram_id", contact.TelegramID),
		zap.Int("student_id", student.ID),
	)

	return "Ok", nil
}

// GetSettings возвращает настройки бота для Telegram аккаунта.
// Возвращает nil, если аккаунт не привязан
func (s *StudentService) GetSettings(ctx context.Context, telegramID int64) (*dto.StudentSettings, error) {
	telegram, err := s.telegrams.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get telegram: %w", err)
	}
	if telegram == nil {
		return nil, nil
	}

	return &dto.StudentSettings{
		TelegramID:      telegram.TelegramID,
		Language:        telegram.Language,
		ScheduleCompact: telegram.ScheduleCompact,
		RemindDeadlines: telegram.RemindDeadlines,
	}, nil
}

// UpdateSettings обновляет настройки бота для Telegram аккаунта.
// Возвращает false, если аккаунт не привязан
func (s *StudentService) UpdateSettings(ctx context.Context, settings *dto.StudentSettings) (bool, error) {
	telegram, err := s.telegrams.GetByTelegramID(ctx, settings.TelegramID)
	if err != nil {
		return false, fmt.Errorf("get telegram: %w", err)
	}
	if telegram == nil {
		return false, nil
	}

	telegram.Language = settings.Language
	telegram.ScheduleCompact = settings.ScheduleCompact
	telegram.RemindDeadlines = settings.RemindDeadlines

	if err := s.telegrams.UpdateSettings(ctx, telegram); err != nil {
		return false, fmt.Errorf("update telegram settings: %w", err)
	}

	return true, nil
}
