package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	DefaultDeepSeekModel   = "deepseek-chat"
	DefaultTimeout         = 30 * time.Second
	DefaultTemperature     = 0.3
)

// DeepSeekConfig configures the DeepSeek client
type DeepSeekConfig struct {
	APIKeys     []string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
	HTTPClient  *http.Client
	Logger      logrus.FieldLogger
}

// DeepSeek calls the OpenAI compatible DeepSeek API, rotating to the next
// key when one is rejected or rate limited.
type DeepSeek struct {
	clients     []*openai.Client
	model       string
	timeout     time.Duration
	temperature float32
	logger      logrus.FieldLogger

	mu      sync.Mutex
	current int
}

// NewDeepSeek creates a client per usable key
func NewDeepSeek(cfg DeepSeekConfig) (*DeepSeek, error) {
	keys := UsableKeys(cfg.APIKeys...)
	if len(keys) == 0 {
		return nil, ErrNoCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultDeepSeekBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultDeepSeekModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	d := &DeepSeek{
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}
	for _, key := range keys {
		clientConfig := openai.DefaultConfig(key)
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
		if cfg.HTTPClient != nil {
			clientConfig.HTTPClient = cfg.HTTPClient
		}
		d.clients = append(d.clients, openai.NewClientWithConfig(clientConfig))
	}
	return d, nil
}

// Name identifies the provider in logs and metrics
func (d *DeepSeek) Name() string {
	return "deepseek"
}

// Complete sends one chat completion. Authentication and rate limit failures
// move on to the next key, at most once per key.
func (d *DeepSeek) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: d.temperature,
	}

	var lastErr error
	for attempt := 0; attempt < len(d.clients); attempt++ {
		idx, client := d.client()
		content, err := d.call(ctx, client, req)
		if err == nil {
			return content, nil
		}
		lastErr = err

		var se *statusError
		if !errors.As(err, &se) || !rotatable(se.code) {
			return "", err
		}
		d.logger.WithFields(logrus.Fields{
			"provider": d.Name(),
			"attempt":  attempt + 1,
			"key":      idx + 1,
			"reason":   Reason(err),
		}).Warn("deepseek key rejected, rotating")
		d.rotate(idx)
	}
	return "", fmt.Errorf("%w: %w", ErrCredentialsExhausted, lastErr)
}

func (d *DeepSeek) call(ctx context.Context, client *openai.Client, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
			return "", &statusError{code: apiErr.HTTPStatusCode, err: err}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
			return "", &statusError{code: reqErr.HTTPStatusCode, err: err}
		}
		return "", fmt.Errorf("deepseek request failed: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (d *DeepSeek) client() (int, *openai.Client) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current, d.clients[d.current]
}

// rotate advances past the failed key unless another request already did
func (d *DeepSeek) rotate(failed int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == failed {
		d.current = (d.current + 1) % len(d.clients)
	}
}
