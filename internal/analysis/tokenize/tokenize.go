// Package tokenize splits article text into sentences and word tokens.
//
// Word tokenization follows the Penn Treebank conventions used by most
// English NLP toolkits: punctuation becomes its own token, the sentence-final
// period is split off and clitics such as "n't" and "'s" are separated.
// Sentence segmentation is rule based with an abbreviation list.
//
// Everything in this package is stateless and safe for concurrent use.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw text into word tokens and sentences.
// Implementations must be deterministic and must not fail on any input.
type Tokenizer interface {
	// Words returns every word and punctuation token in source order.
	Words(text string) []string
	// Sentences returns the sentences of text in source order.
	Sentences(text string) []string
}

// Treebank is the default English Tokenizer.
type Treebank struct{}

// New returns the default tokenizer.
func New() Treebank { return Treebank{} }

// quoteReplacer folds typographic quotes onto their ASCII forms so the
// splitting rules only need to deal with one spelling.
var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"…", "...",
)

func prepare(text string) string {
	return quoteReplacer.Replace(norm.NFC.String(text))
}

// Sentences implements Tokenizer.
func (Treebank) Sentences(text string) []string {
	chunks := strings.Fields(prepare(text))
	if len(chunks) == 0 {
		return nil
	}

	var sentences []string
	start := 0
	for i, c := range chunks {
		next := ""
		if i+1 < len(chunks) {
			next = chunks[i+1]
		}
		if next == "" || endsSentence(c, next) {
			sentences = append(sentences, strings.Join(chunks[start:i+1], " "))
			start = i + 1
		}
	}
	return sentences
}

// Words implements Tokenizer.
func (t Treebank) Words(text string) []string {
	var tokens []string
	for _, s := range t.Sentences(text) {
		chunks := strings.Fields(s)
		for i, c := range chunks {
			tokens = append(tokens, splitChunk(c, i == len(chunks)-1)...)
		}
	}
	return tokens
}

// Normalize lower-cases tokens and keeps only those made entirely of
// letters and digits. Order is preserved. Digit-only tokens are kept.
func Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsAlnum(tok) {
			continue
		}
		out = append(out, strings.ToLower(tok))
	}
	return out
}

// IsAlnum reports whether s is non-empty and every rune is a letter or a number.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// ------------------------------------------------------------------
// Sentence boundaries
// ------------------------------------------------------------------

// abbreviations never end a sentence (lower-case, without the final period).
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"inc": true, "ltd": true, "co": true, "corp": true, "dept": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true, "gen": true, "gov": true, "sen": true,
	"rep": true, "rev": true, "col": true, "lt": true, "sgt": true,
	"capt": true, "fig": true, "approx": true, "mt": true, "ave": true,
}

const closers = `"')]}`

// endsSentence reports whether a sentence boundary follows chunk c.
func endsSentence(c, next string) bool {
	core := strings.TrimRight(c, closers)
	if core == "" {
		return false
	}

	last, _ := utf8.DecodeLastRuneInString(core)
	switch last {
	case '!', '?':
		return true
	case '.':
	default:
		return false
	}

	if strings.HasSuffix(core, "...") {
		// An ellipsis only closes a sentence when a new one visibly starts.
		r, _ := utf8.DecodeRuneInString(strings.TrimLeft(next, `"'([{`))
		return unicode.IsUpper(r)
	}

	word := strings.TrimLeft(strings.TrimSuffix(core, "."), `"'([{`)
	if word == "" {
		return true
	}
	if abbreviations[strings.ToLower(word)] {
		return false
	}
	if utf8.RuneCountInString(word) == 1 && unicode.IsLetter([]rune(word)[0]) {
		return false // initial, as in "J. Smith"
	}
	if strings.Contains(word, ".") {
		return false // dotted acronym such as U.S. or e.g.
	}
	return true
}

// ------------------------------------------------------------------
// Word splitting
// ------------------------------------------------------------------

// leading punctuation split off the front of a chunk, one rune per token.
const leading = "\"([{<`$#@&"

// trailing punctuation split off the end of a chunk, one rune per token.
const trailing = "\"')]}>,;:!?%&"

// splitChunk splits one whitespace-delimited chunk into tokens.
// final marks the last chunk of a sentence, whose period is split off.
func splitChunk(c string, final bool) []string {
	var head []string
	for c != "" {
		r, size := utf8.DecodeRuneInString(c)
		if !strings.ContainsRune(leading, r) {
			break
		}
		head = append(head, c[:size])
		c = c[size:]
	}

	var tail []string
	for c != "" {
		if strings.HasSuffix(c, "...") {
			tail = append(tail, "...")
			c = c[:len(c)-3]
			continue
		}
		r, size := utf8.DecodeLastRuneInString(c)
		if !strings.ContainsRune(trailing, r) {
			break
		}
		tail = append(tail, c[len(c)-size:])
		c = c[:len(c)-size]
	}
	if final && len(c) > 1 && strings.HasSuffix(c, ".") {
		tail = append(tail, ".")
		c = c[:len(c)-1]
		// "mat.)" has its bracket peeled above; "(mat)." leaves one here.
		for c != "" {
			r, size := utf8.DecodeLastRuneInString(c)
			if !strings.ContainsRune(trailing, r) {
				break
			}
			tail = append(tail, c[len(c)-size:])
			c = c[:len(c)-size]
		}
	}

	tokens := head
	for _, piece := range splitInner(c) {
		tokens = append(tokens, splitClitic(piece)...)
	}
	for i := len(tail) - 1; i >= 0; i-- {
		tokens = append(tokens, tail[i])
	}
	return tokens
}

// splitInner splits punctuation inside a chunk: commas and colons that are
// not between digits, semicolons, symbols, double dashes and ellipses.
func splitInner(c string) []string {
	if c == "" {
		return nil
	}
	runes := []rune(c)
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			flush()
			out = append(out, "--")
			i++
		case r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.':
			flush()
			out = append(out, "...")
			i += 2
		case r == ',' || r == ':':
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				cur = append(cur, r) // 1,000 and 12:30 stay whole
				continue
			}
			flush()
			out = append(out, string(r))
		case r == ';' || r == '@' || r == '#' || r == '$' || r == '%' || r == '&' || r == '!' || r == '?':
			flush()
			out = append(out, string(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}

// clitics are split off the end of a word, longest first.
var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// splitClitic separates an English clitic from its host word.
func splitClitic(w string) []string {
	lower := strings.ToLower(w)
	if lower == "cannot" {
		return []string{w[:3], w[3:]}
	}
	for _, cl := range clitics {
		if len(lower) > len(cl) && strings.HasSuffix(lower, cl) {
			cut := len(w) - len(cl)
			return []string{w[:cut], w[cut:]}
		}
	}
	if len(w) > 1 && strings.HasSuffix(w, "'") {
		return []string{w[:len(w)-1], "'"}
	}
	return []string{w}
}
