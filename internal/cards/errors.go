package cards

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrNotCollection   = errors.New("not a collection document")
)

// ErrorKind is a coarse classification of store failures.
type ErrorKind string

const (
	KindIO     ErrorKind = "io"
	KindParse  ErrorKind = "parse"
	KindEncode ErrorKind = "encode"
)

// OpError wraps a store failure with the operation and file involved.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
