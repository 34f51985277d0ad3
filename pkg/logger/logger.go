package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-stackqueue/pkg/settings"
)

// New builds a zap logger from cfg. Entries always go to stderr and, when
// FileLogName is set, to a size-rotated file as JSON.
// Stdout is left alone for program output.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if cfg.FileLogName != "" {
		hook := &lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge, // days
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(hook), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
