package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_LevelAndFormat(t *testing.T) {
	logger, err := New("debug", FormatText)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected text formatter, got %T", logger.Formatter)
	}

	logger, err = New("", "")
	if err != nil {
		t.Fatalf("New defaults: %v", err)
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("default level = %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected json formatter, got %T", logger.Formatter)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New("loud", FormatJSON); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
