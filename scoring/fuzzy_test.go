package scoring

import (
	"reflect"
	"testing"
)

func TestSimilarity(t *testing.T) {
	if got := Similarity("abc", "abc"); got != 1 {
		t.Errorf("identical strings = %v", got)
	}
	if got := Similarity("النقاط", "نقاط"); got < 0.6 {
		t.Errorf("النقاط vs نقاط = %v, want >= 0.6", got)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Errorf("disjoint strings = %v", got)
	}
}

func TestCloseMatches(t *testing.T) {
	got := CloseMatches("النقاط", []string{"نقاط", "النقاط", "بعيد", "النقاط"}, 3, 0.6)
	want := []string{"النقاط", "نقاط"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CloseMatches = %v, want %v", got, want)
	}
	if got := CloseMatches("team", []string{"teams", "team", "teammate", "steam"}, 2, 0.6); len(got) != 2 {
		t.Errorf("expected truncation to 2, got %v", got)
	}
}
