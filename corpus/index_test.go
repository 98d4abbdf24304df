package corpus

import (
	"context"
	"testing"

	"itpf-legal-backend/logging"
	"itpf-legal-backend/models"
)

func TestBuildIndex_CrossReferences(t *testing.T) {
	c, err := NewShardSource(testdataStorage(t), "", logging.Discard()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	idx := BuildIndex(c)

	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		e, ok := idx.Lookup(lang, models.KindArticle, "132")
		if !ok {
			t.Fatalf("%s article 132 not indexed", lang)
		}
		related := idx.Related(e)
		if len(related) != 2 {
			t.Fatalf("%s related = %+v", lang, related)
		}
		if related[0].Kind != models.KindArticle || related[0].Number != "144" || related[0].Language != lang {
			t.Errorf("%s first link = %s", lang, related[0].Key())
		}
		if related[1].Kind != models.KindAppendix || related[1].Number != "9" {
			t.Errorf("%s second link = %s", lang, related[1].Key())
		}
	}

	e, _ := idx.Lookup(models.LanguageEnglish, models.KindArticle, "100")
	if got := idx.Related(e); len(got) != 0 {
		t.Errorf("article 100 cites nothing, got %v", got)
	}
	if _, ok := idx.Lookup(models.LanguageEnglish, models.KindAppendix, "11"); ok {
		t.Error("unexpected appendix 11")
	}
}

func TestIndex_NilSafe(t *testing.T) {
	var idx *Index
	if idx.Related(models.LegalEntry{}) != nil {
		t.Error("nil index should have no links")
	}
}
