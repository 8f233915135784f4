package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// SignatureHeader - заголовок с HMAC-SHA256 подписью тела запроса
const SignatureHeader = "X-Webhook-Signature"

// popTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = 5 * time.Second

// eventQueue - часть клиента Redis, которая нужна воркеру
type eventQueue interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	queue      eventQueue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return newWorker(redisClient, logger, cfg)
}

func newWorker(queue eventQueue, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		queue:  queue,
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *WebhookWorker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping webhook worker.")
			return nil
		}

		result, err := w.queue.BRPop(ctx, popTimeout, webhookQueueKey).Result()
		if err != nil {
			switch {
			case errors.Is(err, redis.Nil):
			case ctx.Err() != nil:
			default:
				w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
				w.sleep(ctx, w.cfg.WebhookBaseDelay)
			}
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event models.ProblemEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
			continue
		}

		w.processWebhookEvent(ctx, event, payload)
	}
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event models.ProblemEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type": event.Type,
		"problem_id": event.ProblemID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Webhook delivery interrupted by shutdown.")
			return
		}
		if i == maxRetries-1 {
			break
		}
		log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if !w.sleep(ctx, delay) {
			return
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// sleep ждет d или отмены контекста; false означает отмену
func (w *WebhookWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
