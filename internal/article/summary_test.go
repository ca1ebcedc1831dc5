package article

import (
	"strings"
	"testing"
)

func TestSummarizeShortText(t *testing.T) {
	text := "One sentence here. Another one there."
	if got := Summarize("", text, 5); got != text {
		t.Errorf("got %q, want the whole text", got)
	}
	if got := Summarize("", "", 5); got != "" {
		t.Errorf("empty text: got %q", got)
	}
}

func TestSummarizePicksRelevantSentences(t *testing.T) {
	text := strings.Join([]string{
		"Markets rallied as earnings beat forecasts.",
		"The weather was mild.",
		"Earnings growth lifted markets across Asia.",
		"A local bakery opened.",
		"Analysts expect markets to keep rising on earnings.",
	}, " ")

	got := Summarize("Markets rally on earnings", text, 3)
	want := "Markets rallied as earnings beat forecasts. " +
		"Earnings growth lifted markets across Asia. " +
		"Analysts expect markets to keep rising on earnings."
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	// Scores: 3.5, 1, 3.67, 1, 3.5. The tie between the first and last
	// sentence goes to the earlier one, and output follows the text.
	text := "Alpha beta. Gamma delta. Alpha alpha beta. Epsilon. Beta alpha."
	got := Summarize("", text, 2)
	if want := "Alpha beta. Alpha alpha beta."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
