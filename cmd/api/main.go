package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/olekhw/deputy_api/internal/app"
	"github.com/olekhw/deputy_api/internal/config"
	"github.com/olekhw/deputy_api/internal/controller"
	"github.com/olekhw/deputy_api/internal/repository"
	"github.com/olekhw/deputy_api/internal/schedule"
	"github.com/olekhw/deputy_api/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting deputy api",
		zap.String("environment", cfg.Environment),
		zap.String("listen_addr", cfg.ListenAddr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := app.NewDatabasePool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории
	coupleRepo := repository.NewCoupleRepository(pool, logger)
	coupleDateRepo := repository.NewCoupleDateRepository(pool, logger)
	additionalCoupleRepo := repository.NewAdditionalCoupleRepository(pool, logger)
	coupleTimeRepo := repository.NewCoupleTimeRepository(pool, logger)
	subjectRepo := repository.NewSubjectRepository(pool, logger)
	subjectTypeRepo := repository.NewSubjectTypeRepository(pool, logger)
	studentRepo := repository.NewStudentRepository(pool, logger)
	telegramRepo := repository.NewTelegramRepository(pool, logger)
	deadlineRepo := repository.NewWorkDeadlineRepository(pool, logger)
	webAuthRepo := repository.NewWebAuthenticationRepository(pool, logger)

	// Движок расписания
	resolver := schedule.NewResolver(coupleRepo, coupleDateRepo, additionalCoupleRepo, coupleTimeRepo, logger)
	counter := schedule.NewCounter(coupleRepo, coupleDateRepo, additionalCoupleRepo, logger)

	// Сервисы
	scheduleService := service.NewScheduleService(resolver, studentRepo, logger)
	informationService := service.NewInformationService(subjectRepo, studentRepo, counter, logger)
	studentService := service.NewStudentService(studentRepo, telegramRepo, logger)
	authService := service.NewAuthService(webAuthRepo, studentRepo, cfg.JwtSecret, cfg.JwtRefreshSecret, logger)
	coupleService := service.NewCoupleService(coupleRepo, coupleDateRepo, logger)
	deadlineService := service.NewDeadlineService(deadlineRepo, logger)

	// Напоминания о дедлайнах работают только при настроенном Telegram токене
	if cfg.TelegramToken != "" {
		telegramBot, err := bot.New(cfg.TelegramToken)
		if err != nil {
			logger.Fatal("Failed to create telegram bot", zap.Error(err))
		}

		scheduler := app.NewScheduler(deadlineService, telegramRepo, telegramBot, logger)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	} else {
		logger.Warn("TELEGRAM_TOKEN is not set, deadline reminders are disabled")
	}

	apiController := controller.NewController(
		scheduleService,
		informationService,
		studentService,
		authService,
		coupleService,
		deadlineService,
		additionalCoupleRepo,
		coupleTimeRepo,
		subjectRepo,
		subjectTypeRepo,
		studentRepo,
		cfg.BotToken,
		logger,
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           apiController.NewRouter(cfg.Environment),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("Deputy api started")

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
