package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeDebug       = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	// OutputPaths defaults to stderr so log lines never mix with the
	// interactive session on stdout.
	OutputPaths []string
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Invalid levels fall back to info and an
// unbuildable config falls back to a stderr logger rather than failing.
func Init(cfg ZapConfig) Logger {
	var zc zap.Config
	switch strings.ToLower(cfg.Mode) {
	case ModeProduction:
		zc = zap.NewProductionConfig()
	default:
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	switch strings.ToLower(cfg.Encoding) {
	case EncodingJSON:
		zc.Encoding = EncodingJSON
		zc.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		zc.Encoding = EncodingConsole
		if cfg.ColorEnabled {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zc.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			level,
		)
		l = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &zapLogger{sugar: l.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := TraceID(ctx); id != "" {
		return z.sugar.With("trace_id", id)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, arg ...any) { z.with(ctx).Debug(arg...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Debugf(template, arg...)
}
func (z *zapLogger) Info(ctx context.Context, arg ...any) { z.with(ctx).Info(arg...) }
func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Infof(template, arg...)
}
func (z *zapLogger) Warn(ctx context.Context, arg ...any) { z.with(ctx).Warn(arg...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Warnf(template, arg...)
}
func (z *zapLogger) Error(ctx context.Context, arg ...any) { z.with(ctx).Error(arg...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Errorf(template, arg...)
}
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.with(ctx).DPanic(arg...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).DPanicf(template, arg...)
}
func (z *zapLogger) Panic(ctx context.Context, arg ...any) { z.with(ctx).Panic(arg...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Panicf(template, arg...)
}
func (z *zapLogger) Fatal(ctx context.Context, arg ...any) { z.with(ctx).Fatal(arg...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.with(ctx).Fatalf(template, arg...)
}
