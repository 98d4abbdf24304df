package generator

import (
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sirupsen/logrus"
)

// TokenCounter estimates how many model tokens a text costs
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts with the cl100k_base encoding
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter loads the cl100k_base encoding
func NewTiktokenCounter() (*TiktokenCounter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, err
	}
	return &TiktokenCounter{enc: enc}, nil
}

// Count returns the number of tokens in text
func (c *TiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// RuneCounter approximates two runes per token
type RuneCounter struct{}

// Count returns the estimated number of tokens in text
func (RuneCounter) Count(text string) int {
	return (utf8.RuneCountInString(text) + 1) / 2
}

// NewTokenCounter prefers tiktoken and falls back to the rune estimate when
// the encoding cannot be loaded.
func NewTokenCounter(logger logrus.FieldLogger) TokenCounter {
	c, err := NewTiktokenCounter()
	if err != nil {
		if logger != nil {
			logger.WithError(err).Warn("tiktoken unavailable, estimating prompt tokens from length")
		}
		return RuneCounter{}
	}
	return c
}
