package nlp

import "strings"

// EmotionNeutral is returned when no keyword accumulates any score.
const EmotionNeutral = "neutral"

// EmotionEntry binds one emotion label to its keyword list. Keywords may
// appear under several labels; ambiguity is scored, not rejected.
type EmotionEntry struct {
	Label    string
	Keywords []string
}

// EmotionTable is the ordered emotion-keyword table. Declaration order is
// the tie-break order, so it must stay stable after load.
type EmotionTable []EmotionEntry

// Verdict is the outcome of one classification pass.
type Verdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Scoring weights for the three matching tiers. An exact token hit is the
// strongest signal, a phrase hit inside the cleaned text catches multi-word
// keywords, and the fuzzy tier tolerates a single typo per keyword.
const (
	exactTokenWeight  = 2.0
	phraseWeight      = 1.5
	fuzzyTokenWeight  = 0.8
	fuzzyMinExclusive = 0.6
)

// EmotionClassifier scores normalized text against an emotion table.
// Pure and deterministic: the same input always yields the same verdict.
type EmotionClassifier struct {
	table EmotionTable
}

func NewEmotionClassifier(table EmotionTable) *EmotionClassifier {
	return &EmotionClassifier{table: table}
}

// Classify accumulates keyword evidence per emotion and returns the
// dominant label with a confidence in [0, 1]. Confidence measures
// dominance relative to total signal, not an absolute probability.
func (c *EmotionClassifier) Classify(norm Normalized) Verdict {
	scores := make([]float64, len(c.table))
	total := 0.0

	tokenSet := make(map[string]struct{}, len(norm.Tokens))
	for _, tok := range norm.Tokens {
		tokenSet[tok] = struct{}{}
	}

	for i, entry := range c.table {
		for _, keyword := range entry.Keywords {
			w := keywordWeight(keyword, tokenSet, norm)
			scores[i] += w
			total += w
		}
	}

	winner := -1
	for i := range scores {
		if scores[i] > 0 && (winner < 0 || scores[i] > scores[winner]) {
			winner = i
		}
	}
	if winner < 0 {
		return Verdict{Label: EmotionNeutral, Confidence: 0.0}
	}

	denom := total * 0.5
	if denom < 1.0 {
		denom = 1.0
	}
	confidence := scores[winner] / denom
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Verdict{Label: c.table[winner].Label, Confidence: confidence}
}

func keywordWeight(keyword string, tokenSet map[string]struct{}, norm Normalized) float64 {
	if _, ok := tokenSet[keyword]; ok {
		return exactTokenWeight
	}
	if strings.Contains(norm.CleanText, keyword) {
		return phraseWeight
	}
	// First qualifying fuzzy token wins; no double counting per keyword.
	for _, tok := range norm.Tokens {
		if Ratio(keyword, tok) > fuzzyMinExclusive {
			return fuzzyTokenWeight
		}
	}
	return 0.0
}

// Labels returns the declared emotion labels, in table order.
func (c *EmotionClassifier) Labels() []string {
	labels := make([]string, len(c.table))
	for i, entry := range c.table {
		labels[i] = entry.Label
	}
	return labels
}

// AllKeywords flattens the table into one keyword list, in table order.
// The intent router uses this as its emotional-fallback test set.
func (t EmotionTable) AllKeywords() []string {
	var all []string
	for _, entry := range t {
		all = append(all, entry.Keywords...)
	}
	return all
}
