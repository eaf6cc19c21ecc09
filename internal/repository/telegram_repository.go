package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// TelegramRepository управляет привязками Telegram аккаунтов в базе данных
type TelegramRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewTelegramRepository создаёт новый репозиторий
func NewTelegramRepository(pool *pgxpool.Pool, logger *zap.Logger) *TelegramRepository {
	return &TelegramRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// GetByTelegramID получает привязку по идентификатору Telegram аккаунта
func (r *TelegramRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Telegram, error) {
	query := `
		SELECT id, student_id, telegram_id, language, schedule_compact, remind_deadlines
		FROM telegrams
		WHERE telegram_id = $1
	`

	telegram := &model.Telegram{}
	err := r.QueryRow(ctx, query, telegramID).Scan(
		&telegram.ID,
		&telegram.StudentID,
		&telegram.TelegramID,
		&telegram.Language,
		&telegram.ScheduleCompact,
		&telegram.RemindDeadlines,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get telegram by telegram id: %w", err)
	}

	return telegram, nil
}

// Create создаёт новую привязку Telegram аккаунта
func (r *TelegramRepository) Create(ctx context.Context, telegram *model.Telegram) error {
	query := `
		INSERT INTO telegrams (student_id, telegram_id, language, schedule_compact, remind_deadlines)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, telegram.StudentID, telegram.TelegramID,
		telegram.Language, telegram.ScheduleCompact, telegram.RemindDeadlines).Scan(&telegram.ID)
	if err != nil {
		return fmt.Errorf("create telegram: %w", err)
	}

	return nil
}

// UpdateSettings обновляет настройки бота для привязки
func (r *TelegramRepository) UpdateSettings(ctx context.Context, telegram *model.Telegram) error {
	query := `
		UPDATE telegrams
		SET language = $2, schedule_compact = $3, remind_deadlines = $4
		WHERE telegram_id = $1
	`

	affected, err := r.Exec(ctx, query, telegram.TelegramID, telegram.Language,
		telegram.ScheduleCompact, telegram.RemindDeadlines)
	if err != nil {
		return fmt.Errorf("update telegram settings: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update telegram settings: no rows affected")
	}

	return nil
}

// ListDeadlineSubscribers получает привязки студентов, подписанных на напоминания о дедлайнах
func (r *TelegramRepository) ListDeadlineSubscribers(ctx context.Context) ([]*model.Telegram, error) {
	query := `
		SELECT id, student_id, telegram_id, language, schedule_compact, remind_deadlines
		FROM telegrams
		WHERE remind_deadlines = true
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list deadline subscribers: %w", err)
	}
	defer rows.Close()

	var telegrams []*model.Telegram
	for rows.Next() {
		telegram := &model.Telegram{}
		err := rows.Scan(
			&telegram.ID,
			&telegram.StudentID,
			&telegram.TelegramID,
			&telegram.Language,
			&telegram.ScheduleCompact,
			&telegram.RemindDeadlines,
		)
		if err != nil {
			return nil, fmt.Errorf("scan telegram: %w", err)
		}
		telegrams = append(telegrams, telegram)
	}

	return telegrams, rows.Err()
}
