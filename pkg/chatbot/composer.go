package chatbot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"mentora-be/internal/constant"
	"mentora-be/pkg/nlp"
	"mentora-be/pkg/search"
)

// UnansweredHook is invoked when an info_or_unknown query finds no
// answer. Collaborators use it to record the query for admin review.
type UnansweredHook func(rawText string)

// Composer turns a routing decision plus classifier/search output into a
// typed response. Template selection is the only randomized step; the RNG
// is injected so tests can pin it.
type Composer struct {
	normalizer *nlp.Normalizer
	classifier *nlp.EmotionClassifier

	rngMu sync.Mutex
	rng   *rand.Rand

	onUnanswered UnansweredHook
}

func NewComposer(
	normalizer *nlp.Normalizer,
	classifier *nlp.EmotionClassifier,
	rng *rand.Rand,
	onUnanswered UnansweredHook,
) *Composer {
	return &Composer{
		normalizer:   normalizer,
		classifier:   classifier,
		rng:          rng,
		onUnanswered: onUnanswered,
	}
}

func (c *Composer) pick(list []string) string {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return list[c.rng.Intn(len(list))]
}

// Greeting emits a rotating warm greeting.
func (c *Composer) Greeting() Response {
	return NewTextResponse(c.pick(constant.GreetingResponses))
}

// Fallback emits a polite non-answer. Used for empty messages and for
// neutral emotional verdicts; this path is never empty or absent.
func (c *Composer) Fallback() Response {
	return NewTextResponse(c.pick(constant.PoliteFallbacks))
}

// MentalHealth classifies the message and fills an emotion template with
// the detected concern context.
func (c *Composer) MentalHealth(norm nlp.Normalized) Response {
	verdict := c.classifier.Classify(norm)
	if verdict.Label == nlp.EmotionNeutral {
		return c.Fallback()
	}

	templates, ok := constant.ResponseTemplates[verdict.Label]
	if !ok || len(templates) == 0 {
		templates = constant.GeneralSupportTemplates
	}

	message := strings.ReplaceAll(c.pick(templates), constant.ContextPlaceholder, concernPhrase(norm))
	return NewTextResponse(message)
}

// concernPhrase derives the short context phrase from the first concern
// whose keywords appear in the message, in declared precedence order.
func concernPhrase(norm nlp.Normalized) string {
	tokenSet := make(map[string]struct{}, len(norm.Tokens))
	for _, tok := range norm.Tokens {
		tokenSet[tok] = struct{}{}
	}

	for _, cc := range constant.ConcernContexts {
		for _, kw := range constant.ConcernKeywords[cc.Concern] {
			if _, ok := tokenSet[kw]; ok {
				return cc.Phrase
			}
			if strings.Contains(norm.CleanText, kw) {
				return cc.Phrase
			}
		}
	}
	return ""
}

// Notes shapes a notes_request reply. When the query names exactly one
// subject, the reply browses that subject's units; otherwise ranked
// results, then the subject catalogue, then the empty-corpus text.
func (c *Composer) Notes(norm nlp.Normalized, results []search.ScoredUnit, subjects []search.Subject) Response {
	if subject, ok := c.soleSubjectMatch(norm, subjects); ok && len(subject.Units) > 0 {
		units := make(map[string]search.Unit, len(subject.Units))
		for _, u := range subject.Units {
			units[u.Name] = u
		}
		return UnitsListResponse{
			Type:    TypeUnitsList,
			Message: constant.UnitsListMessage,
			Subject: subject.Name,
			Units:   units,
		}
	}

	if len(results) > 0 {
		return NotesResultsResponse{
			Type:    TypeNotesResults,
			Message: constant.NotesResultsMessage,
			Results: results,
		}
	}

	if len(subjects) > 0 {
		counts := make(map[string]int, len(subjects))
		for _, s := range subjects {
			counts[s.Name] = len(s.Units)
		}
		return SubjectsListResponse{
			Type:     TypeSubjectsList,
			Message:  constant.SubjectsListMessage,
			Subjects: counts,
		}
	}

	return NewTextResponse(constant.NoNotesMessage)
}

func (c *Composer) soleSubjectMatch(norm nlp.Normalized, subjects []search.Subject) (search.Subject, bool) {
	var match search.Subject
	count := 0
	for _, s := range subjects {
		nameClean := c.normalizer.Clean(s.Name)
		if nameClean == "" || norm.CleanText == "" {
			continue
		}
		if strings.Contains(norm.CleanText, nameClean) || strings.Contains(nameClean, norm.CleanText) {
			match = s
			count++
		}
	}
	return match, count == 1
}

// Archive shapes a pyq_request reply: ranked results, then the per-type
// catalogue as a browsing fallback, then the empty-corpus text.
func (c *Composer) Archive(results []search.ScoredDocument, docs []search.Document) Response {
	if len(results) > 0 {
		return PYQResultsResponse{
			Type:    TypePYQResults,
			Message: constant.ArchiveResultsMessage,
			Results: results,
		}
	}

	if len(docs) > 0 {
		byType := make(map[string]int)
		for _, d := range docs {
			t := string(d.Type)
			if t == "" {
				t = string(search.DocTypeOthers)
			}
			byType[t]++
		}
		return PYQListResponse{
			Type:    TypePYQList,
			Message: constant.ArchiveListMessage,
			Types:   byType,
		}
	}

	return NewTextResponse(constant.NoArchiveMessage)
}

// Unknown shapes the info_or_unknown reply from the info-corpus and
// knowledge-base lookups. The boolean reports whether the query went
// unanswered, in which case the hook has already been invoked.
func (c *Composer) Unknown(rawText string, info []search.ScoredInfo, knowledgeAnswer string, hasKnowledge bool) (Response, bool) {
	if len(info) == 1 {
		return NewTextResponse(info[0].Content), false
	}
	if len(info) > 1 {
		var b strings.Builder
		fmt.Fprintf(&b, "Found %d items matching your query:\n", len(info))
		for i, item := range info {
			fmt.Fprintf(&b, "\n%d. %s", i+1, item.Content)
			if i < len(info)-1 {
				b.WriteString("\n\n---\n")
			}
		}
		return NewTextResponse(b.String()), false
	}

	if hasKnowledge {
		return NewTextResponse(knowledgeAnswer), false
	}

	if c.onUnanswered != nil {
		c.onUnanswered(rawText)
	}
	return NewTextResponse(constant.UnknownFallbackMessage), true
}
