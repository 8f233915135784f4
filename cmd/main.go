package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/shenikar/civic_tracker/internal/departments"
	v1 "github.com/shenikar/civic_tracker/internal/handler/http/v1"
	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/mq"
	"github.com/shenikar/civic_tracker/internal/repository"
	"github.com/shenikar/civic_tracker/internal/service"
	"github.com/shenikar/civic_tracker/internal/store"
	"github.com/shenikar/civic_tracker/internal/triage"
	"github.com/shenikar/civic_tracker/internal/webhook"
	"github.com/shenikar/civic_tracker/pkg/logger"
	"github.com/shenikar/civic_tracker/pkg/postgres"
	redisclient "github.com/shenikar/civic_tracker/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/civic_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Civic Tracker API
// @version 1.0
// @description Civic problem reporting and tracking API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg)

	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Инициализация репозиториев
	problemRepo := repository.NewProblemRepository(dbpool)
	photoRepo := repository.NewPhotoRepository(dbpool)
	cacheRepo := repository.NewCacheRepository(redisClient)

	// Восстановление обращений из PostgreSQL
	problemStore := store.New(store.WithPersister(problemRepo))
	saved, err := problemRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load problems: %v", err)
	}
	if err := problemStore.Restore(saved); err != nil {
		log.Fatalf("Failed to restore problems: %v", err)
	}
	log.WithField("count", problemStore.Len()).Info("Problems restored")

	// Справочник департаментов
	var directory *departments.Directory
	if cfg.DepartmentsFile != "" {
		directory, err = departments.Load(cfg.DepartmentsFile)
		if err != nil {
			log.Fatalf("Failed to load departments: %v", err)
		}
		log.WithField("count", len(directory.List())).Info("Departments loaded")
	}

	// Издатели событий: очередь вебхуков в Redis и, если задан, обмен RabbitMQ
	publishers := service.FanoutPublisher{webhook.NewRedisEventPublisher(redisClient)}
	if cfg.RabbitMQURL != "" {
		rabbit, err := mq.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, log)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publishers = append(publishers, rabbit)
		log.Info("Successfully connected to RabbitMQ")
	}

	// Инициализация сервисов
	problemService := service.NewProblemService(service.Deps{
		Store:      problemStore,
		Machine:    lifecycle.NewMachine(time.Now),
		Classifier: triage.NewClassifier(),
		Directory:  directory,
		Photos:     photoRepo,
		Cache:      cacheRepo,
		Events:     publishers,
	}, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(problemService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxPhotoBytes
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Воркер вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	g.Go(func() error {
		return webhookWorker.Run(gctx)
	})

	// HTTP-сервер
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
		return
	}
	log.Info("Server gracefully stopped")
}
