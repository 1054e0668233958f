package client

import (
	"fmt"
	"strings"
)

// Kind classifies a failed call. Handlers switch on it instead of
// matching message text.
type Kind string

const (
	KindNotConfigured Kind = "not_configured"
	KindUnauthorized  Kind = "unauthorized"
	KindRateLimited   Kind = "rate_limited"
	KindServerError   Kind = "server_error"
	KindAPIError      Kind = "api_error"
	KindTimeout       Kind = "timeout"
	KindConnection    Kind = "connection_error"
	KindUnknown       Kind = "unknown"
	KindValidation    Kind = "validation"
)

// Error is the single error value every remote call and loader returns.
// Status is set only for KindAPIError, Messages only for KindValidation.
type Error struct {
	Kind     Kind
	Status   int
	Message  string
	Messages []string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPIError:
		return fmt.Sprintf("Error %d: %s", e.Status, e.Message)
	case KindValidation:
		return strings.Join(e.Messages, "; ")
	default:
		return e.Message
	}
}

func NotConfigured() *Error {
	return &Error{Kind: KindNotConfigured, Message: "API key not provided"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized: Please check your API key"}
}

func RateLimited() *Error {
	return &Error{Kind: KindRateLimited, Message: "Rate limit exceeded. Please try again later"}
}

func ServerError() *Error {
	return &Error{Kind: KindServerError, Message: "Server error. Please try again later"}
}

func APIError(status int, message string) *Error {
	return &Error{Kind: KindAPIError, Status: status, Message: message}
}

func Timeout() *Error {
	return &Error{Kind: KindTimeout, Message: "Request timed out. Please try again"}
}

func ConnectionFailed() *Error {
	return &Error{Kind: KindConnection, Message: "Connection error. Please check your internet connection"}
}

func Unknown(detail string) *Error {
	return &Error{Kind: KindUnknown, Message: "Request failed: " + detail}
}

func Validation(messages []string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}
