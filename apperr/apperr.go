package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so handlers can map it to a response
// without string-matching messages.
type Kind uint8

const (
	KindUnknown Kind = iota
	Validation       // bad input, caught before any remote call
	Auth             // identity provider rejected credentials or operation
	DataIntegrity    // credential valid but account record missing
	RemoteRead       // read from the document database failed
	RemoteWrite      // write to the document database failed
	Upload           // media host returned non-success
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or KindUnknown when err was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
