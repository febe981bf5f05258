package chatbot

import (
	"strings"

	"mentora-be/pkg/nlp"
)

// Intent is the coarse category a message routes to before detailed
// processing.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentNotesRequest Intent = "notes_request"
	IntentPYQRequest   Intent = "pyq_request"
	IntentMentalHealth Intent = "mental_health"
	IntentUnknown      Intent = "info_or_unknown"
)

// Router classifies a message into an intent using cheap keyword and
// synonym tests. Content intents are deliberately checked before the
// emotional fallback, so "I'm stressed, can you show me notes" still
// resolves to a notes request.
type Router struct {
	normalizer *nlp.Normalizer
	synonyms   nlp.SynonymTable

	greetingKeywords []string
	notesKeywords    []string
	archiveKeywords  []string
	emotionKeywords  []string
}

func NewRouter(
	normalizer *nlp.Normalizer,
	synonyms nlp.SynonymTable,
	greetingKeywords, notesKeywords, archiveKeywords []string,
	emotionTable nlp.EmotionTable,
) *Router {
	return &Router{
		normalizer:       normalizer,
		synonyms:         synonyms,
		greetingKeywords: greetingKeywords,
		notesKeywords:    notesKeywords,
		archiveKeywords:  archiveKeywords,
		emotionKeywords:  emotionTable.AllKeywords(),
	}
}

// Messages longer than this never count as a bare greeting, so "can you
// help me find notes" falls through to the content checks.
const maxGreetingWords = 4

// emotionalFuzzyThreshold is inclusive here, unlike the classifier's
// strict > 0.6 tier: routing only needs a hint that the classifier is
// worth running.
const emotionalFuzzyThreshold = 0.7

// Route normalizes the message once and returns the matched intent along
// with the normalization, which downstream components reuse.
func (r *Router) Route(message string) (Intent, nlp.Normalized) {
	norm := r.normalizer.Normalize(message)
	if norm.CleanText == "" {
		return IntentUnknown, norm
	}

	if r.isGreeting(norm) {
		return IntentGreeting, norm
	}

	expanded := r.synonyms.Expand(norm.Tokens)
	if matchesDomain(norm.CleanText, expanded, r.notesKeywords) {
		return IntentNotesRequest, norm
	}
	if matchesDomain(norm.CleanText, expanded, r.archiveKeywords) {
		return IntentPYQRequest, norm
	}

	if r.isEmotional(norm) {
		return IntentMentalHealth, norm
	}

	return IntentUnknown, norm
}

func (r *Router) isGreeting(norm nlp.Normalized) bool {
	if len(strings.Fields(norm.CleanText)) > maxGreetingWords {
		return false
	}
	for _, greeting := range r.greetingKeywords {
		if strings.Contains(norm.CleanText, greeting) {
			return true
		}
	}
	return false
}

// matchesDomain tests a keyword set against the synonym-expanded query.
// Single-word keywords match expanded terms exactly; multi-word keywords
// match as phrases inside the cleaned text.
func matchesDomain(cleanText string, expandedTerms, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(cleanText, kw) {
				return true
			}
			continue
		}
		for _, term := range expandedTerms {
			if term == kw {
				return true
			}
		}
	}
	return false
}

// isEmotional tests the union of all emotion keywords, by substring
// inside a word and by per-word fuzzy ratio.
func (r *Router) isEmotional(norm nlp.Normalized) bool {
	for _, kw := range r.emotionKeywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(norm.CleanText, kw) {
				return true
			}
			continue
		}
		for _, tok := range norm.Tokens {
			if strings.Contains(tok, kw) {
				return true
			}
			if nlp.Ratio(kw, tok) >= emotionalFuzzyThreshold {
				return true
			}
		}
	}
	return false
}
