// Package generator wraps the external language models that can rewrite a
// locally retrieved answer. Every failure here is recoverable: callers fall
// back to the templated answer.
package generator

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNoCredentials        = errors.New("no usable API credentials configured")
	ErrEmptyCompletion      = errors.New("generator returned empty content")
	ErrCredentialsExhausted = errors.New("all API credentials failed")
)

// Generator produces a completion for a system and user prompt
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
	Name() string
}

var placeholderMarkers = []string{"your_", "your-", "placeholder", "changeme", "xxx"}

// IsPlaceholder reports whether a credential is missing or a template value
func IsPlaceholder(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return true
	}
	for _, m := range placeholderMarkers {
		if strings.Contains(k, m) {
			return true
		}
	}
	return false
}

// UsableKeys drops placeholders and duplicates, keeping order
func UsableKeys(keys ...string) []string {
	seen := map[string]bool{}
	var out []string
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if IsPlaceholder(k) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Reason classifies a generator error for metrics and logs
func Reason(err error) string {
	var se *statusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCompletion):
		return "empty"
	case errors.Is(err, ErrNoCredentials):
		return "no_credentials"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrCredentialsExhausted):
		return "exhausted"
	case errors.As(err, &se) && se.code == 429:
		return "rate_limit"
	case errors.As(err, &se) && (se.code == 401 || se.code == 403):
		return "auth"
	case errors.As(err, &se):
		return "status"
	}
	return "error"
}

// statusError carries the HTTP status of a failed provider call
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string { return e.err.Error() }

func (e *statusError) Unwrap() error { return e.err }

// rotatable reports whether the next credential should be tried
func rotatable(code int) bool {
	return code == 401 || code == 403 || code == 429
}
