// Package errors provides structured error handling for Fern.
//
// Canvas and signal problems never surface as errors; they degrade to
// no-ops. The error types here cover the remaining classes: tree-structure
// mistakes caught at attach time, and faults inside widget render or input
// handlers that the frame loop contains and reports.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a failure while rendering a widget.
	KindRender
	// KindInput indicates a failure while dispatching input to a widget.
	KindInput
	// KindLayout indicates a recoverable layout problem.
	KindLayout
	// KindTree indicates an invalid widget tree operation.
	KindTree
	// KindConfig indicates an invalid configuration.
	KindConfig
	// KindHost indicates a failure reported by the host (input or present).
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindInput:
		return "input"
	case KindLayout:
		return "layout"
	case KindTree:
		return "tree"
	case KindConfig:
		return "config"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes for TreeError.
var (
	ErrNilChild        = stderrors.New("child is nil")
	ErrSelfAttach      = stderrors.New("widget cannot be its own child")
	ErrCycle           = stderrors.New("attaching child would create a cycle")
	ErrAlreadyAttached = stderrors.New("child already has a parent")
	ErrAlreadyRoot     = stderrors.New("widget is already a root")
)

// Layout problems. They are reported with KindLayout and never abort layout.
var (
	ErrUnboundedFlex = stderrors.New("flex children cannot expand along an unbounded main axis")
	ErrOverflow      = stderrors.New("children overflow the available main axis extent")
)

// FernError represents a structured error reported by the framework.
type FernError struct {
	// Op is the operation that failed (e.g., "core.RenderAll").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget describes the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FernError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FernError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.DispatchInput").
	Op string
	// Widget describes the widget whose handler panicked, if known.
	Widget string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// TreeError reports a rejected attach or detach in the widget tree.
// Err is one of the sentinel causes and can be matched with errors.Is.
type TreeError struct {
	// Op is the tree operation (e.g., "widgets.Flex.AddChild").
	Op string
	// Parent is the type name of the would-be parent.
	Parent string
	// Child is the type name of the rejected child.
	Child string
	// Err is the sentinel cause.
	Err error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: cannot attach %s to %s: %v", e.Op, e.Child, e.Parent, e.Err)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FernError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
// It is a thin wrapper so callers do not need to import both packages.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
