package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot boxes the interface so it can live in an atomic.Pointer.
type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs h as the global error handler. Pass nil to restore
// the default LogHandler. Safe for concurrent use.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err with the current time if it has none and passes it to
// the global handler. A nil err is ignored.
func Report(err *FernError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

func panicked(op, widget string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Widget:     widget,
		Value:      r,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	}
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("engine.Frame")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, "", r))
	}
}

// RecoverWithCallback is Recover followed by callback(r) when a panic was
// caught.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(panicked(op, "", r))
	if callback != nil {
		callback(r)
	}
}

// Guard runs fn and converts a panic into a reported PanicError tagged with
// op and widget. It returns true if fn panicked.
func Guard(op, widget string, fn func()) (didPanic bool) {
	defer func() {
		if r := recover(); r != nil {
			didPanic = true
			ReportPanic(panicked(op, widget, r))
		}
	}()
	fn()
	return false
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
