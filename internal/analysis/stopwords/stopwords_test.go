package stopwords

import (
	"reflect"
	"testing"
)

func TestEnglishSize(t *testing.T) {
	if got := English().Len(); got != 179 {
		t.Errorf("English().Len(): got %d, want 179", got)
	}
}

func TestContains(t *testing.T) {
	s := English()
	for _, w := range []string{"the", "and", "was", "on", "don't", "s"} {
		if !s.Contains(w) {
			t.Errorf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"cat", "market", "The", ""} {
		if s.Contains(w) {
			t.Errorf("expected %q not to be a stop word", w)
		}
	}
}

func TestFilter(t *testing.T) {
	in := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "was", "happy"}
	want := []string{"cat", "sat", "mat", "cat", "happy"}
	got := English().Filter(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter: got %q, want %q", got, want)
	}
	if in[0] != "the" {
		t.Error("Filter must not modify its input")
	}
}

func TestFilterAllStopWords(t *testing.T) {
	got := English().Filter([]string{"the", "a", "of"})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCustomSet(t *testing.T) {
	s := New([]string{"foo"})
	got := s.Filter([]string{"foo", "bar", "the"})
	want := []string{"bar", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
