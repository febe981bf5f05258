package search

import (
	"sort"
	"strings"

	"mentora-be/pkg/nlp"
)

// Score contributions. Name hits dominate keyword hits so that an item
// named exactly like the query always outranks a keyword-only match.
const (
	scoreNameMatch    = 40
	scoreUnitMatch    = 35
	scoreKeywordMatch = 30
	scoreTypeMatch    = 20
	scoreKeywordFuzzy = 15

	keywordFuzzyThreshold = 0.7

	// Caps the response payload; realistic corpora rank well within this.
	maxResults = 20
)

// Info-corpus weights follow a different scale because exact keyword
// hits there are authoritative answers, not ranking hints.
const (
	infoKeywordExact   = 100
	infoKeywordContain = 50
	infoKeywordFuzzy   = 30
	infoTitleContain   = 60
	infoTitleFuzzy     = 40
	infoContentContain = 20
	infoFuzzyThreshold = 0.85
	infoMinScore       = 50

	knowledgeThreshold = 0.75
)

// Engine scores a free-text query against the content corpora. All
// methods are pure over (query, corpus) and safe for concurrent use.
type Engine struct {
	normalizer *nlp.Normalizer
	synonyms   nlp.SynonymTable
}

func NewEngine(normalizer *nlp.Normalizer, synonyms nlp.SynonymTable) *Engine {
	return &Engine{normalizer: normalizer, synonyms: synonyms}
}

// expandedQuery carries the cleaned query plus its synonym expansion.
type expandedQuery struct {
	clean string
	terms []string
}

// expand cleans the query and collects the synonym terms it triggers.
// Containment always runs against the whole cleaned query or a whole
// synonym term, never an individual query word: a stray one-letter word
// would substring-match nearly any name or keyword.
func (e *Engine) expand(query string) expandedQuery {
	clean := e.normalizer.Clean(query)
	words := strings.Fields(clean)

	inQuery := make(map[string]struct{}, len(words))
	for _, w := range words {
		inQuery[w] = struct{}{}
	}

	var terms []string
	for _, term := range e.synonyms.Expand(words) {
		if _, raw := inQuery[term]; raw {
			continue
		}
		if len(term) < 2 {
			continue
		}
		terms = append(terms, term)
	}
	return expandedQuery{clean: clean, terms: terms}
}

// containsEither reports containment in either direction between two
// non-empty cleaned strings.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchesName checks the whole query (or any triggered synonym term)
// against a cleaned name. Expansion is additive: the raw query is always
// tried first.
func (q expandedQuery) matchesName(name string) bool {
	if containsEither(q.clean, name) {
		return true
	}
	for _, term := range q.terms {
		if containsEither(term, name) {
			return true
		}
	}
	return false
}

// keywordScore applies the containment/fuzzy keyword tiers. The fuzzy
// tier runs against the raw cleaned query only; synonym expansion is a
// containment-level widening, not a typo model.
func (q expandedQuery) keywordScore(clean func(string) string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		kwClean := clean(kw)
		if kwClean == "" {
			continue
		}
		if q.matchesName(kwClean) {
			score += scoreKeywordMatch
		} else if nlp.Ratio(q.clean, kwClean) > keywordFuzzyThreshold {
			score += scoreKeywordFuzzy
		}
	}
	return score
}

// SearchUnits scores every unit in the note corpus. A unit inherits its
// subject's name/keyword contributions and then adds its own. Zero-score
// units are dropped; ties keep corpus iteration order.
func (e *Engine) SearchUnits(query string, subjects []Subject) []ScoredUnit {
	q := e.expand(query)
	var results []ScoredUnit

	for _, subject := range subjects {
		subjectScore := 0
		if q.matchesName(e.normalizer.Clean(subject.Name)) {
			subjectScore += scoreNameMatch
		}
		subjectScore += q.keywordScore(e.normalizer.Clean, subject.Keywords)

		for _, unit := range subject.Units {
			unitScore := subjectScore
			if q.matchesName(e.normalizer.Clean(unit.Name)) {
				unitScore += scoreUnitMatch
			}
			unitScore += q.keywordScore(e.normalizer.Clean, unit.Keywords)

			if unitScore > 0 {
				results = append(results, ScoredUnit{
					Subject: subject.Name,
					Unit:    unit.Name,
					Data:    unit,
					Score:   unitScore,
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// SearchDocuments scores the archive corpus: name, keywords and the
// document type (so "timetable" finds every timetable upload).
func (e *Engine) SearchDocuments(query string, docs []Document) []ScoredDocument {
	q := e.expand(query)
	var results []ScoredDocument

	for _, doc := range docs {
		score := 0
		if q.matchesName(e.normalizer.Clean(doc.Name)) {
			score += scoreNameMatch
		}
		score += q.keywordScore(e.normalizer.Clean, doc.Keywords)
		if q.matchesName(e.normalizer.Clean(string(doc.Type))) {
			score += scoreTypeMatch
		}

		if score > 0 {
			results = append(results, ScoredDocument{ID: doc.ID, Data: doc, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// SearchInfo scores the info corpus. Exact keyword equality is the
// authoritative signal; items below the relevance threshold are dropped.
func (e *Engine) SearchInfo(query string, items []InfoItem) []ScoredInfo {
	q := e.expand(query)
	var results []ScoredInfo

	for _, item := range items {
		score := 0
		for _, kw := range item.Keywords {
			kwClean := e.normalizer.Clean(kw)
			if kwClean == "" {
				continue
			}
			switch {
			case q.clean == kwClean:
				score += infoKeywordExact
			case containsEither(q.clean, kwClean):
				score += infoKeywordContain
			case nlp.Ratio(q.clean, kwClean) > infoFuzzyThreshold:
				score += infoKeywordFuzzy
			}
		}

		titleClean := e.normalizer.Clean(item.Title)
		if containsEither(q.clean, titleClean) {
			score += infoTitleContain
		} else if nlp.Ratio(q.clean, titleClean) > infoFuzzyThreshold {
			score += infoTitleFuzzy
		}

		if q.clean != "" && strings.Contains(e.normalizer.Clean(item.Content), q.clean) {
			score += infoContentContain
		}

		if score >= infoMinScore {
			results = append(results, ScoredInfo{
				Category: item.Category,
				Title:    item.Title,
				Content:  item.Content,
				Score:    score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// MatchKnowledge fuzzily matches the raw query against stored Q&A pairs.
// Returns the first answer whose question clears the threshold.
func (e *Engine) MatchKnowledge(query string, entries []KnowledgeEntry) (string, bool) {
	queryClean := e.normalizer.Clean(query)
	for _, entry := range entries {
		if nlp.Ratio(queryClean, e.normalizer.Clean(entry.Question)) > knowledgeThreshold {
			return entry.Answer, true
		}
	}
	return "", false
}
