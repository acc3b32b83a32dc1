package service

import "errors"

// ErrorKind classifies operation failures so callers can map them to
// transport codes without parsing messages.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindAuthorization
	KindValidation
	KindNotFound
	KindQuotaExceeded
)

// Error is a typed operation failure with a stable kind and a
// human-readable message.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// KindOf extracts the kind from err, KindUnknown for untyped errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func authorizationErr(msg string) error {
	if msg == "" {
		msg = "not authorized"
	}
	return &Error{Kind: KindAuthorization, Msg: msg}
}

func validationErr(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func notFoundErr(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func quotaExceededErr(msg string) error {
	return &Error{Kind: KindQuotaExceeded, Msg: msg}
}
