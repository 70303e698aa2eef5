package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the application logger from config. Invalid levels fall back
// to info rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		level = parsed
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// withCtx attaches request-scoped fields when present.
func (l *zapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.withCtx(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Debugf(template, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.withCtx(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Infof(template, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.withCtx(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Warnf(template, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.withCtx(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Errorf(template, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.withCtx(ctx).DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).DPanicf(template, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...any) { l.withCtx(ctx).Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Panicf(template, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.withCtx(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.withCtx(ctx).Fatalf(template, args...)
}
