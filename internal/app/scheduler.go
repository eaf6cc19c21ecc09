package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository"
	"github.com/olekhw/deputy_api/internal/service"
	"go.uber.org/zap"
)

// Дедлайны считаются ближайшими, если наступают в течение трёх дней
const reminderWindowDays = 3

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	deadlineService *service.DeadlineService
	telegrams       *repository.TelegramRepository
	bot             *bot.Bot
	logger          *zap.Logger
	stopChan        chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(
	deadlineService *service.DeadlineService,
	telegrams *repository.TelegramRepository,
	b *bot.Bot,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		deadlineService: deadlineService,
		telegrams:       telegrams,
		bot:             b,
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runDeadlineReminderTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runDeadlineReminderTask раз в сутки рассылает напоминания о ближайших дедлайнах
func (s *Scheduler) runDeadlineReminderTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.sendDeadlineReminders(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sendDeadlineReminders(ctx)
		case <-s.stopChan:
			s.logger.Info("Deadline reminder task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Deadline reminder task cancelled")
			return
		}
	}
}

// sendDeadlineReminders отправляет подписанным студентам список ближайших дедлайнов
func (s *Scheduler) sendDeadlineReminders(ctx context.Context) {
	deadlines, err := s.deadlineService.Upcoming(ctx, reminderWindowDays)
	if err != nil {
		s.logger.Error("Failed to load upcoming deadlines", zap.Error(err))
		return
	}
	if len(deadlines) == 0 {
		return
	}

	subscribers, err := s.telegrams.ListDeadlineSubscribers(ctx)
	if err != nil {
		s.logger.Error("Failed to load deadline subscribers", zap.Error(err))
		return
	}

	text := formatDeadlineReminder(deadlines)

	for _, subscriber := range subscribers {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: subscriber.TelegramID,
			Text:   text,
		})
		if err != nil {
			s.logger.Error("Failed to send deadline reminder",
				zap.Int64("telegram_id", subscriber.TelegramID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Deadline reminders sent",
		zap.Int("deadlines", len(deadlines)),
		zap.Int("subscribers", len(subscribers)),
	)
}

// formatDeadlineReminder собирает текст напоминания о ближайших дедлайнах
func formatDeadlineReminder(deadlines []*model.WorkDeadline) string {
	var sb strings.Builder
	sb.WriteString("⏰ Найближчі дедлайни:\n")

	for _, deadline := range deadlines {
		if deadline.Deadline == nil {
			continue
		}

		subjectName := ""
		if deadline.Subject != nil {
			subjectName = deadline.Subject.ShortName + ", "
		}

		fmt.Fprintf(&sb, "\n• %s%s — %s", subjectName, deadline.Name, deadline.Deadline.Format("02.01"))
	}

	return sb.String()
}
