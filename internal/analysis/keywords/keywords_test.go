package keywords

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/seenimoa/newsnugget/pkg/models"
)

func TestRankScenario(t *testing.T) {
	tokens := []string{"cat", "sat", "mat", "cat", "happy"}
	got := New().Rank(tokens)
	want := []models.KeywordEntry{
		{Keyword: "cat", Frequency: 2},
		{Keyword: "sat", Frequency: 1},
		{Keyword: "mat", Frequency: 1},
		{Keyword: "happy", Frequency: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank: got %+v, want %+v", got, want)
	}
}

func TestRankTieBreakByFirstOccurrence(t *testing.T) {
	tokens := []string{"zeta", "alpha", "mid", "alpha", "zeta", "mid", "omega"}
	got := New().Rank(tokens)
	wantOrder := []string{"zeta", "alpha", "mid", "omega"}
	for i, w := range wantOrder {
		if got[i].Keyword != w {
			t.Fatalf("position %d: got %q, want %q (full %+v)", i, got[i].Keyword, w, got)
		}
	}
}

func TestRankTruncatesToTopN(t *testing.T) {
	var tokens []string
	for i := 0; i < 15; i++ {
		for j := 0; j <= i; j++ {
			tokens = append(tokens, fmt.Sprintf("w%02d", i))
		}
	}
	got := New().Rank(tokens)
	if len(got) != DefaultTopN {
		t.Fatalf("len: got %d, want %d", len(got), DefaultTopN)
	}
	if got[0].Keyword != "w14" || got[0].Frequency != 15 {
		t.Errorf("first: got %+v, want w14×15", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Errorf("not sorted at %d: %+v", i, got)
		}
	}
}

func TestRankFewerThanTopN(t *testing.T) {
	tokens := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9"}
	got := New().Rank(tokens)
	if len(got) != 9 {
		t.Errorf("len: got %d, want 9", len(got))
	}
}

func TestRankEmpty(t *testing.T) {
	got := New().Rank(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestWithTopN(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{3, 3},
		{0, DefaultTopN},
		{-1, DefaultTopN},
	}
	tokens := make([]string, 20)
	for i := range tokens {
		tokens[i] = string(rune('a' + i))
	}
	for _, tt := range tests {
		if got := New(WithTopN(tt.n)).Rank(tokens); len(got) != tt.want {
			t.Errorf("WithTopN(%d): got %d entries, want %d", tt.n, len(got), tt.want)
		}
	}
	got := New(WithTopN(2)).Rank([]string{"a", "b", "c", "d"})
	if len(got) != 2 || got[0].Keyword != "a" || got[1].Keyword != "b" {
		t.Errorf("WithTopN(2): got %+v", got)
	}
}

func TestRankWithStemming(t *testing.T) {
	tokens := []string{"markets", "rally", "market", "rallies", "marketing"}
	got := New(WithStemming(true)).Rank(tokens)
	if got[0].Keyword != "markets" || got[0].Frequency != 3 {
		t.Errorf("first: got %+v, want markets×3", got[0])
	}
	if got[1].Keyword != "rally" || got[1].Frequency != 2 {
		t.Errorf("second: got %+v, want rally×2", got[1])
	}
}

func TestRankWithoutStemmingKeepsSurfaceForms(t *testing.T) {
	got := New().Rank([]string{"markets", "market"})
	if len(got) != 2 {
		t.Errorf("expected 2 distinct keywords, got %+v", got)
	}
}
