package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a chat failure for status mapping and logging.
type Kind string

const (
	KindConfig        Kind = "config"         // credential missing
	KindUpstreamHTTP  Kind = "upstream_http"  // non-2xx from Gemini
	KindPromptBlocked Kind = "prompt_blocked" // prompt refused before generation
	KindBadEnvelope   Kind = "bad_envelope"   // response structurally unexpected
	KindInternal      Kind = "internal"       // anything else
)

// Error is the single error type the chat path surfaces. Status is the HTTP
// status returned to the caller and Detail the client-visible message; the
// wrapped cause stays server-side.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("chat: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("chat: %s: %s: %v", e.Kind, e.Detail, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewConfigError() *Error {
	return &Error{
		Kind:   KindConfig,
		Status: http.StatusInternalServerError,
		Detail: "Google API key not configured.",
	}
}

func NewUpstreamHTTPError(status int, detail string) *Error {
	return &Error{
		Kind:   KindUpstreamHTTP,
		Status: status,
		Detail: detail,
	}
}

func NewPromptBlockedError(detail string) *Error {
	return &Error{
		Kind:   KindPromptBlocked,
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

func NewBadEnvelopeError(detail string) *Error {
	return &Error{
		Kind:   KindBadEnvelope,
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

func NewInternalError(err error) *Error {
	return &Error{
		Kind:   KindInternal,
		Status: http.StatusInternalServerError,
		Detail: fmt.Sprintf("Error processing your request: %v", err),
		Err:    err,
	}
}

// AsError returns the typed chat error inside err, or nil.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
