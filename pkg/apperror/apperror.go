package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindNotFound
)

// Error carries the kind used for the HTTP status and a message id resolved by
// the i18n bundle.
type Error struct {
	Kind      Kind
	MessageID string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.MessageID + ": " + e.Err.Error()
	}
	return e.MessageID
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msgID string) *Error {
	return &Error{Kind: KindValidation, MessageID: msgID}
}

func NotFound(msgID string) *Error {
	return &Error{Kind: KindNotFound, MessageID: msgID}
}

func Store(msgID string, err error) *Error {
	return &Error{Kind: KindStore, MessageID: msgID, Err: err}
}

// KindOf returns KindStore for errors that are not *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// MessageID returns fallback for errors that are not *Error.
func MessageID(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.MessageID != "" {
		return appErr.MessageID
	}
	return fallback
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
