package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"wildsafari/internal/config"
)

// Logger wraps logrus.Logger with the request helpers used by middleware.
type Logger struct {
	*logrus.Logger
	config *config.LoggingConfig
}

type Fields map[string]interface{}

func New(cfg *config.LoggingConfig) (*Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var output io.Writer
	switch cfg.Output {
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, err
		}
		output = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		output = os.Stdout
	}
	logger.SetOutput(output)

	return &Logger{Logger: logger, config: cfg}, nil
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l, config: &config.LoggingConfig{}}
}

func (l *Logger) WithFields(fields Fields) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields(fields))
}

func (l *Logger) LogRequest(method, path, clientIP, traceID string, statusCode int, durationMs int64) {
	entry := l.WithFields(Fields{
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"trace_id":    traceID,
		"status_code": statusCode,
		"duration_ms": durationMs,
		"type":        "request",
	})

	switch {
	case statusCode >= 500:
		entry.Error("HTTP request")
	case statusCode >= 400:
		entry.Warn("HTTP request")
	default:
		entry.Info("HTTP request")
	}
}
