package logging

import (
	"io"
	"os"
	"strings"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/boldgroup/website/internal/pkg/env"
)

// Setup configures the fiber logger from LOG_LEVEL and LOG_FILE. With LOG_FILE
// set, logs go to stdout and a rotating file.
func Setup() io.Writer {
	fiberlog.SetLevel(ParseLevel(env.GetEnv("LOG_LEVEL", "info")))

	var output io.Writer = os.Stdout
	if path := env.GetEnv("LOG_FILE", ""); path != "" {
		output = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    env.GetEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: env.GetEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     env.GetEnvInt("LOG_MAX_AGE_DAYS", 28),
			Compress:   true,
		})
	}
	fiberlog.SetOutput(output)

	return output
}

func ParseLevel(level string) fiberlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return fiberlog.LevelTrace
	case "debug":
		return fiberlog.LevelDebug
	case "warn", "warning":
		return fiberlog.LevelWarn
	case "error":
		return fiberlog.LevelError
	default:
		return fiberlog.LevelInfo
	}
}
