package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"itpf-legal-backend/logging"
)

// fakeDeepSeek answers chat completions per API key
type fakeDeepSeek struct {
	mu       sync.Mutex
	statuses map[string]int
	content  string
	calls    []string
}

func (f *fakeDeepSeek) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/chat/completions" {
		http.NotFound(w, r)
		return
	}
	key := r.Header.Get("Authorization")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	status := f.statuses[key]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "rejected", "type": "invalid_request_error"},
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":      "cmpl-1",
		"object":  "chat.completion",
		"model":   DefaultDeepSeekModel,
		"choices": []map[string]interface{}{{"index": 0, "message": map[string]string{"role": "assistant", "content": f.content}, "finish_reason": "stop"}},
	})
}

func newTestDeepSeek(t *testing.T, fake *fakeDeepSeek, keys ...string) *DeepSeek {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	d, err := NewDeepSeek(DeepSeekConfig{APIKeys: keys, BaseURL: server.URL, Logger: logging.Discard()})
	if err != nil {
		t.Fatalf("NewDeepSeek() error = %v", err)
	}
	return d
}

func TestDeepSeek_RotatesOnRejectedKey(t *testing.T) {
	fake := &fakeDeepSeek{
		statuses: map[string]int{"Bearer key-a": http.StatusUnauthorized},
		content:  "وفقا للمادة 144",
	}
	d := newTestDeepSeek(t, fake, "key-a", "key-b")

	got, err := d.Complete(context.Background(), "system", "user", 100)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "وفقا للمادة 144" {
		t.Errorf("Complete() = %q", got)
	}
	if len(fake.calls) != 2 || fake.calls[1] != "Bearer key-b" {
		t.Errorf("calls = %v, want key-a then key-b", fake.calls)
	}

	// the working key stays current for the next request
	if _, err := d.Complete(context.Background(), "system", "user", 100); err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}
	if last := fake.calls[len(fake.calls)-1]; last != "Bearer key-b" {
		t.Errorf("second request used %q, want key-b", last)
	}
}

func TestDeepSeek_ServerErrorDoesNotRotate(t *testing.T) {
	fake := &fakeDeepSeek{statuses: map[string]int{"Bearer key-a": http.StatusInternalServerError}}
	d := newTestDeepSeek(t, fake, "key-a", "key-b")

	_, err := d.Complete(context.Background(), "system", "user", 100)
	if err == nil {
		t.Fatal("Complete() error = nil, want error")
	}
	if len(fake.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(fake.calls))
	}
	if got := Reason(err); got != "status" {
		t.Errorf("Reason() = %q, want status", got)
	}
}

func TestDeepSeek_ExhaustsAllKeys(t *testing.T) {
	fake := &fakeDeepSeek{statuses: map[string]int{
		"Bearer key-a": http.StatusTooManyRequests,
		"Bearer key-b": http.StatusForbidden,
	}}
	d := newTestDeepSeek(t, fake, "key-a", "key-b")

	_, err := d.Complete(context.Background(), "system", "user", 100)
	if !errors.Is(err, ErrCredentialsExhausted) {
		t.Fatalf("Complete() error = %v, want ErrCredentialsExhausted", err)
	}
	if len(fake.calls) != 2 {
		t.Errorf("calls = %d, want one per key", len(fake.calls))
	}
	if got := Reason(err); got != "exhausted" {
		t.Errorf("Reason() = %q, want exhausted", got)
	}
}

func TestDeepSeek_EmptyContent(t *testing.T) {
	fake := &fakeDeepSeek{content: "   "}
	d := newTestDeepSeek(t, fake, "key-a")

	_, err := d.Complete(context.Background(), "system", "user", 100)
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("Complete() error = %v, want ErrEmptyCompletion", err)
	}
}

func TestNewDeepSeek_PlaceholderKeys(t *testing.T) {
	_, err := NewDeepSeek(DeepSeekConfig{APIKeys: []string{"", "your_deepseek_api_key_here", "changeme"}})
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("NewDeepSeek() error = %v, want ErrNoCredentials", err)
	}
}

func TestUsableKeys(t *testing.T) {
	got := UsableKeys(" key-a ", "key-a", "sk-placeholder", "key-b")
	if len(got) != 2 || got[0] != "key-a" || got[1] != "key-b" {
		t.Errorf("UsableKeys() = %v", got)
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmptyCompletion, "empty"},
		{ErrNoCredentials, "no_credentials"},
		{context.DeadlineExceeded, "timeout"},
		{&statusError{code: 429, err: errors.New("slow down")}, "rate_limit"},
		{&statusError{code: 401, err: errors.New("bad key")}, "auth"},
		{&statusError{code: 502, err: errors.New("bad gateway")}, "status"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
