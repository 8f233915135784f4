package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// New создает логгер по LOG_LEVEL и LOG_FORMAT; вывод в stdout
func New(cfg *config.Config) *logrus.Logger {
	return newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)
}

func newLogger(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	// JSON по умолчанию, text - для локального запуска
	if strings.EqualFold(format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
