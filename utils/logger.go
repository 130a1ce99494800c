package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Two output streams: user-facing results go to stdout (and can be
// silenced when stdio carries the MCP protocol), operational logs go to
// stderr through zap.
var (
	userLogger     *log.Logger
	internalLogger *zap.SugaredLogger
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

func init() {
	userLogger = log.New(os.Stdout, "", 0)
	initInternalLogger("production")
}

func initInternalLogger(mode string) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if os.Getenv(constants.EnvDebug) != "" || mode == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		log.Printf("failed to initialize zap logger: %v", err)
		internalLogger = nil
		return
	}
	internalLogger = l.Sugar()
}

// User prints user-facing output on stdout.
func User(format string, v ...any) {
	if userLogger != nil {
		userLogger.Printf(format, v...)
	}
}

func Info(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Infof(format, v...)
	}
}

func Warn(format string, v ...any) {
	if internalLogger != nil {
		internalLogger.Warnf(format, v...)
	}
}

// Errorf logs the error message and returns it as an error value.
func Errorf(format string, v ...any) error {
	err := fmt.Errorf(format, v...)
	if internalLogger != nil {
		internalLogger.Errorf("%s", err)
	}
	return err
}

// SetUserOutput redirects user-facing output; nil restores stdout.
func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	userLogger = log.New(w, "", 0)
}

// SetInternalOutput redirects operational logs, at debug level so tests
// can capture everything; nil restores stderr.
func SetInternalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	internalLogger = zap.New(core).Sugar()
}

// SetMode rebuilds the internal logger; "debug" enables debug-level logs.
func SetMode(mode string) {
	initInternalLogger(mode)
}

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// RequestIDFromContext extracts the request ID from context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if s, ok := ctx.Value(requestIDKey).(string); ok {
		return s, true
	}
	return "", false
}

func ctxFields(ctx context.Context, fields []any) []any {
	if reqID, ok := RequestIDFromContext(ctx); ok {
		return append(fields, "request_id", reqID)
	}
	return fields
}

// ErrorCtx logs an error with structured fields plus the context's
// request ID when set.
func ErrorCtx(ctx context.Context, msg string, fields ...any) {
	if internalLogger != nil {
		internalLogger.Errorw(msg, ctxFields(ctx, fields)...)
	}
}

// DebugCtx logs a debug message with structured fields plus the
// context's request ID when set.
func DebugCtx(ctx context.Context, msg string, fields ...any) {
	if internalLogger != nil {
		internalLogger.Debugw(msg, ctxFields(ctx, fields)...)
	}
}
