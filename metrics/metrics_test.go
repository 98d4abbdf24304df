package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"itpf-legal-backend/models"
)

func TestObserveCorpus(t *testing.T) {
	c := &models.Corpus{
		Arabic: models.LanguageCorpus{
			Articles:   make([]models.LegalEntry, 3),
			Appendices: make([]models.LegalEntry, 2),
		},
		English: models.LanguageCorpus{Articles: make([]models.LegalEntry, 1)},
	}
	ObserveCorpus(c)

	tests := []struct {
		lang, kind string
		want       float64
	}{
		{"arabic", "article", 3},
		{"arabic", "appendix", 2},
		{"english", "article", 1},
		{"english", "appendix", 0},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(CorpusEntries.WithLabelValues(tt.lang, tt.kind)); got != tt.want {
			t.Errorf("corpus entries %s/%s = %v, want %v", tt.lang, tt.kind, got, tt.want)
		}
	}

	ObserveCorpus(nil)
}

func TestObserveStage(t *testing.T) {
	before := testutil.CollectAndCount(StageDuration)
	ObserveStage("test_stage", time.Now())
	if after := testutil.CollectAndCount(StageDuration); after != before+1 {
		t.Errorf("stage series = %d, want %d", after, before+1)
	}
}
