package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"itpf-legal-backend/models"
)

func TestQuestionID_Normalizes(t *testing.T) {
	a := QuestionID("  ما هي عقوبة   المادة ١٤٤ ", models.LanguageArabic, false)
	b := QuestionID("ما هي عقوبة المادة 144", models.LanguageArabic, false)
	if a != b {
		t.Errorf("QuestionID differs for equivalent questions: %s vs %s", a, b)
	}

	if QuestionID("Penalty?", models.LanguageEnglish, false) != QuestionID("PENALTY?", models.LanguageEnglish, false) {
		t.Error("QuestionID should ignore case")
	}
}

func TestQuestionID_SeparatesLanguageAndGeneration(t *testing.T) {
	base := QuestionID("penalty", models.LanguageEnglish, false)
	if base == QuestionID("penalty", models.LanguageArabic, false) {
		t.Error("languages share an ID")
	}
	if base == QuestionID("penalty", models.LanguageEnglish, true) {
		t.Error("generated and local answers share an ID")
	}
}

func TestKey(t *testing.T) {
	id := QuestionID("penalty", models.LanguageEnglish, false)
	key := Key(id, "v1")
	if !strings.HasPrefix(key, "itpf:answer:v1:") || !strings.HasSuffix(key, id.String()) {
		t.Errorf("Key() = %q", key)
	}
	if key == Key(id, "v2") {
		t.Error("corpus versions share a key")
	}
}

func TestNewRedisCacheWithClient_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	c := NewRedisCacheWithClient(client, 0)
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
	if c := NewRedisCacheWithClient(client, time.Minute); c.ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", c.ttl)
	}
}
