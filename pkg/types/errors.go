package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a crop failed
type ErrorKind int

const (
	// Unknown is returned by KindOf for errors that did not come from this module
	Unknown ErrorKind = iota
	NotFound
	DecodeError
	EncodeError
	IoError
	EmptyCrop
	InvalidConfig
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case DecodeError:
		return "decode error"
	case EncodeError:
		return "encode error"
	case IoError:
		return "io error"
	case EmptyCrop:
		return "empty crop"
	case InvalidConfig:
		return "invalid config"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the loading, cropping and saving steps
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewError builds an *Error, Path may be empty
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
