package nlp

import (
	"strings"
	"unicode"
)

// Normalized is the output of a normalization pass: the cleaned text with
// emotional punctuation preserved, and the filtered token sequence.
type Normalized struct {
	CleanText string
	Tokens    []string
}

// Normalizer lowercases, strips and tokenizes raw chat messages.
// Safe for concurrent use; all state is immutable after construction.
type Normalizer struct {
	stopWords map[string]struct{}
	lemmatize bool
}

// Punctuation kept during cleaning because it signals emotional intensity.
const preservedPunct = "!?.,"

// Stop words removed during tokenization. Words carrying emotional valence
// (no, not, very, too, down, up, can, cannot) are deliberately absent.
var defaultStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such",
	"only", "own", "same", "so", "than", "s", "t", "will", "just", "don",
	"should", "now", "m", "d", "ll", "o", "re", "ve", "y",
}

type NormalizerOption func(*Normalizer)

// WithoutLemmatizer disables base-form reduction. This is the degraded
// path: tokens pass through unchanged, everything else still works.
func WithoutLemmatizer() NormalizerOption {
	return func(n *Normalizer) {
		n.lemmatize = false
	}
}

func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		stopWords: make(map[string]struct{}, len(defaultStopWords)),
		lemmatize: true,
	}
	for _, w := range defaultStopWords {
		n.stopWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize cleans and tokenizes raw input. It never fails: empty or
// malformed input yields an empty result.
func (n *Normalizer) Normalize(raw string) Normalized {
	clean := n.Clean(raw)

	var tokens []string
	for _, field := range strings.Fields(clean) {
		token := strings.Trim(field, preservedPunct)
		if token == "" {
			continue
		}
		if _, stop := n.stopWords[token]; stop {
			continue
		}
		if n.lemmatize {
			token = Lemma(token)
		}
		tokens = append(tokens, token)
	}

	return Normalized{CleanText: clean, Tokens: tokens}
}

// Clean lowercases the input, replaces every character outside word
// characters, whitespace and the preserved punctuation set with a space,
// and collapses runs of whitespace.
func (n *Normalizer) Clean(raw string) string {
	lower := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case strings.ContainsRune(preservedPunct, r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Lemma reduces a token to a base form using noun plural rules. This is a
// best-effort reduction, not full morphological analysis: verbs and
// irregular forms pass through unchanged.
func Lemma(token string) string {
	if len(token) < 4 {
		return token
	}
	switch {
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"),
		strings.HasSuffix(token, "ches"),
		strings.HasSuffix(token, "shes"),
		strings.HasSuffix(token, "xes"),
		strings.HasSuffix(token, "zes"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ss"),
		strings.HasSuffix(token, "us"),
		strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}
	return token
}
