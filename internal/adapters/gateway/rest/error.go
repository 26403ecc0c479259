package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a gateway failure so callers can branch on the kind
// instead of matching message strings.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindValidation ErrorKind = "validation"
	KindServer     ErrorKind = "server"
)

// Error is the uniform failure shape surfaced by every gateway operation: a
// kind plus a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError extracts the gateway error from a wrapped chain, if present.
func AsError(err error) (*Error, bool) {
	var gwErr *Error
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}
