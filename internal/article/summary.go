package article

import (
	"sort"
	"strings"

	"github.com/seenimoa/newsnugget/internal/analysis/stopwords"
	"github.com/seenimoa/newsnugget/internal/analysis/tokenize"
)

// DefaultSummarySentences is how many sentences Summarize keeps.
const DefaultSummarySentences = 5

// titleWeight is the bonus per title word found in a sentence.
const titleWeight = 1.5

// Summarize builds an extractive summary: sentences are scored by the
// document frequency of their keywords plus their overlap with the title,
// and the best n are returned in document order.
func Summarize(title, text string, n int) string {
	if n < 1 {
		n = DefaultSummarySentences
	}
	tok := tokenize.New()
	stop := stopwords.English()

	sentences := tok.Sentences(text)
	if len(sentences) <= n {
		return strings.Join(sentences, " ")
	}

	freq := make(map[string]int)
	words := make([][]string, len(sentences))
	for i, s := range sentences {
		words[i] = stop.Filter(tokenize.Normalize(tok.Words(s)))
		for _, w := range words[i] {
			freq[w]++
		}
	}
	titleWords := make(map[string]bool)
	for _, w := range stop.Filter(tokenize.Normalize(tok.Words(title))) {
		titleWords[w] = true
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, ws := range words {
		ranked[i] = scored{index: i, score: sentenceScore(ws, freq, titleWords)}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	picked := ranked[:n]
	sort.Slice(picked, func(a, b int) bool { return picked[a].index < picked[b].index })

	out := make([]string, len(picked))
	for i, p := range picked {
		out[i] = sentences[p.index]
	}
	return strings.Join(out, " ")
}

func sentenceScore(words []string, freq map[string]int, title map[string]bool) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range words {
		total += float64(freq[w])
		if title[w] {
			total += titleWeight
		}
	}
	return total / float64(len(words))
}
