package errors

import (
	"context"
	"log/slog"

	"github.com/go-fern/fern/pkg/logging"
)

// LogHandler is an ErrorHandler that writes through the Fern logger.
type LogHandler struct {
	// Verbose attaches stack traces to every record.
	Verbose bool
}

// HandleError logs a FernError at warn level for layout problems and at
// error level for everything else.
func (h *LogHandler) HandleError(err *FernError) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if err.Kind == KindLayout {
		level = slog.LevelWarn
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Widget != "" {
		attrs = append(attrs, "widget", err.Widget)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	logging.Logger().Log(context.Background(), level, "fern error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if err.Widget != "" {
		attrs = append(attrs, "widget", err.Widget)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	logging.Logger().Error("fern panic", attrs...)
}
