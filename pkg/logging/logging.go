package logging

import (
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vknowable/namada-ping-middleware/pkg/utils"
)

func New() (*zap.Logger, error) {
	level := utils.Env("LOG_LEVEL", "info")
	encoding := utils.Env("LOG_ENCODING", "json")
	cfg := zap.NewProductionConfig()
	cfg.Encoding = encoding
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var opts []zap.Option
	if dsn := utils.Env("SENTRY_DSN", ""); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: utils.Env("SERVER_MODE", "dev"),
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.RegisterHooks(core, SentryHook)
		}))
	}

	l, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SentryHook forwards warn and above to Sentry. Lower levels are dropped.
func SentryHook(entry zapcore.Entry) error {
	level, ok := SentryLevel(entry.Level)
	if !ok {
		return nil
	}
	e := sentry.NewEvent()
	e.Message = entry.Message
	e.Level = level
	e.Logger = entry.LoggerName
	sentry.CaptureEvent(e)
	return nil
}

// SentryLevel maps a zap level onto a sentry level; false means "do not report".
func SentryLevel(l zapcore.Level) (sentry.Level, bool) {
	switch l {
	case zapcore.WarnLevel:
		return sentry.LevelWarning, true
	case zapcore.ErrorLevel:
		return sentry.LevelError, true
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal, true
	default:
		return "", false
	}
}
