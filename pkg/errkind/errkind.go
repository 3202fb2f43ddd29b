// Package errkind classifies the failures that can occur while reading sensor
// positions, transforms and channel files, so callers can branch on the kind
// of a failure instead of its message.
package errkind

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a class of failure
type Kind int

const (
	// Unknown is the kind of errors not created by this package
	Unknown Kind = iota
	// ResourceOpen means an input file is missing or unreadable
	ResourceOpen
	// DirectiveFormat means a header directive could not be split or parsed
	DirectiveFormat
	// UnknownUnit means a unit directive names no recognized unit
	UnknownUnit
	// TruncatedData means fewer coordinate lines were present than declared
	TruncatedData
	// CoordinateFormat means a coordinate line could not be parsed
	CoordinateFormat
	// TransformFormat means a transform file row is malformed or missing
	TransformFormat
	// Range means a numeric parameter is outside its valid domain
	Range
	// SinkFormat means a channel file could not be encoded or decoded
	SinkFormat
)

var kindNames = map[Kind]string{
	Unknown:          "unknown",
	ResourceOpen:     "resource open",
	DirectiveFormat:  "directive format",
	UnknownUnit:      "unknown unit",
	TruncatedData:    "truncated data",
	CoordinateFormat: "coordinate format",
	TransformFormat:  "transform format",
	Range:            "range",
	SinkFormat:       "sink format",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure. Path and Line are optional and only set
// when the failure can be attributed to a location in an input file.
type Error struct {
	Kind Kind
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" error")
	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind with a formatted message
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// AtLine creates an Error attributed to a line of an input
func AtLine(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err. It returns nil if err is nil.
func Wrap(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WithPath returns err with Path set if err is an *Error without a path
func WithPath(err error, path string) error {
	var e *Error
	if errors.As(err, &e) && e.Path == "" {
		cp := *e
		cp.Path = path
		return &cp
	}
	return err
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err's chain contains an *Error of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
