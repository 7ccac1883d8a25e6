package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
	redact        *redactor
}

type Option func(*redactor)

// WithRedaction toggles scrubbing of credential-like keys. salt is mixed into
// hashed identifiers so they cannot be matched across deployments.
func WithRedaction(enabled bool, salt string) Option {
	return func(r *redactor) {
		r.enabled = enabled
		r.salt = strings.TrimSpace(salt)
	}
}

// New builds a logger for the given mode: "prod"/"production" emits JSON,
// "test" only surfaces warnings and above, anything else is the zap
// development console format. Redaction is on unless an Option turns it off.
func New(mode string, opts ...Option) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "test":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableStacktrace = true
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	r := &redactor{enabled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return &Logger{SugaredLogger: zapLogger.Sugar(), redact: r}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar(), redact: &redactor{}}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, l.redact.kvs(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, l.redact.kvs(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, l.redact.kvs(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, l.redact.kvs(keysAndValues)...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, l.redact.kvs(keysAndValues)...)
}

// With returns a child logger that shares the parent's redaction settings.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(l.redact.kvs(keysAndValues)...),
		redact:        l.redact,
	}
}
