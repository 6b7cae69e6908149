package vision

import (
	"fmt"
	"strings"
)

// UpstreamKind categorizes the cause of a failed vision model call.
type UpstreamKind string

// Upstream failure categories, used for log detail only; all kinds are
// recovered the same way by the orchestrator.
const (
	UpstreamAuth      UpstreamKind = "auth"
	UpstreamRateLimit UpstreamKind = "rate-limit"
	UpstreamOther     UpstreamKind = "other"
)

// UpstreamError represents a failed call to the vision model.
type UpstreamError struct {
	Kind    UpstreamKind
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vision upstream error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("vision upstream error (%s): %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError indicates the model responded but its output could not
// be parsed into the expected garment structure.
type MalformedOutputError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed vision output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed vision output: %s", e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// upstreamKind inspects an error's text to distinguish auth and rate-limit
// failures from generic ones.
func upstreamKind(err error) UpstreamKind {
	if err == nil {
		return UpstreamOther
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission"):
		return UpstreamAuth
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate"):
		return UpstreamRateLimit
	}
	return UpstreamOther
}
