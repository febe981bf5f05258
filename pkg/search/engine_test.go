package search

import (
	"fmt"
	"testing"

	"mentora-be/pkg/nlp"
)

func testEngine() *Engine {
	syn := nlp.SynonymTable{
		"maths": {"mathematics"},
		"pyq":   {"previous year questions", "question papers"},
	}
	return NewEngine(nlp.NewNormalizer(), syn)
}

func mathsCorpus() []Subject {
	return []Subject{
		{
			Name:     "Mathematics",
			Keywords: []string{"algebra", "calculus"},
			Units: []Unit{
				{Name: "Unit 1 Algebra", Filename: "algebra.pdf", Keywords: []string{"algebra"}},
				{Name: "Unit 2 Calculus", Filename: "calculus.pdf", Keywords: []string{"calculus"}},
			},
		},
		{
			Name:     "Physics",
			Keywords: []string{"mechanics"},
			Units: []Unit{
				{Name: "Unit 1 Kinematics", Filename: "kinematics.pdf"},
			},
		},
	}
}

func TestSearchUnitsNameBeatsKeyword(t *testing.T) {
	e := testEngine()
	subjects := []Subject{
		{
			Name:  "Physics",
			Units: []Unit{{Name: "Unit 1", Filename: "p1.pdf"}},
		},
		{
			Name:     "Statistics",
			Keywords: []string{"physics"},
			Units:    []Unit{{Name: "Unit 1", Filename: "s1.pdf"}},
		},
	}

	results := e.SearchUnits("physics", subjects)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Subject != "Physics" {
		t.Errorf("top result = %q, want name match to outrank keyword match", results[0].Subject)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("scores %d vs %d, want strict ordering", results[0].Score, results[1].Score)
	}
}

func TestSearchUnitsInheritsSubjectScore(t *testing.T) {
	e := testEngine()
	results := e.SearchUnits("mathematics algebra", mathsCorpus())

	if len(results) != 2 {
		t.Fatalf("got %d results, want both mathematics units", len(results))
	}
	// Both units inherit the subject name and keyword hits; the algebra
	// unit adds its own keyword contribution on top.
	if results[0].Unit != "Unit 1 Algebra" {
		t.Errorf("top unit = %q, want the algebra unit", results[0].Unit)
	}
	if results[1].Unit != "Unit 2 Calculus" {
		t.Errorf("second unit = %q, want the sibling unit", results[1].Unit)
	}
	if results[1].Score <= 0 {
		t.Errorf("sibling score = %d, want inherited subject score", results[1].Score)
	}
}

func TestSearchUnitsSynonymExpansion(t *testing.T) {
	e := testEngine()
	results := e.SearchUnits("maths", mathsCorpus())

	if len(results) == 0 {
		t.Fatal("synonym-expanded query found nothing")
	}
	for _, r := range results {
		if r.Subject != "Mathematics" {
			t.Errorf("unexpected subject %q in results", r.Subject)
		}
	}
}

func TestSearchUnitsStopwordsDoNotMatchKeywords(t *testing.T) {
	e := testEngine()
	subjects := []Subject{
		{
			Name:     "Chemistry",
			Keywords: []string{"organic"},
			Units:    []Unit{{Name: "Unit 1", Filename: "c1.pdf"}},
		},
	}

	// "a" is a substring of "organic"; containment must run against the
	// whole query, never word by word.
	if results := e.SearchUnits("show me a note", subjects); len(results) != 0 {
		t.Errorf("got %d results, want none for an unrelated query", len(results))
	}
}

func TestSearchUnitsNameMatchOutranksStopwordNoise(t *testing.T) {
	e := testEngine()
	subjects := []Subject{
		{
			Name:     "Data Science",
			Keywords: []string{"ai", "win", "antique"},
			Units:    []Unit{{Name: "Unit 1", Filename: "d1.pdf"}},
		},
		{
			Name:  "History",
			Units: []Unit{{Name: "Unit 1", Filename: "h1.pdf"}},
		},
	}

	// "i" alone would substring-match every keyword above; only the
	// name-matching subject may score.
	results := e.SearchUnits("i want history", subjects)
	if len(results) != 1 {
		t.Fatalf("got %d results, want only the name match", len(results))
	}
	if results[0].Subject != "History" {
		t.Errorf("top result = %q, want the name-matching subject", results[0].Subject)
	}
	if results[0].Score != scoreNameMatch {
		t.Errorf("score = %d, want the name weight %d", results[0].Score, scoreNameMatch)
	}
}

func TestSearchUnitsKeywordFuzzyTier(t *testing.T) {
	e := testEngine()
	subjects := []Subject{
		{
			Name:     "Chemistry",
			Keywords: []string{"algebta"}, // typo, no containment either way
			Units:    []Unit{{Name: "Unit 1", Filename: "c1.pdf"}},
		},
	}

	results := e.SearchUnits("algebra", subjects)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != scoreKeywordFuzzy {
		t.Errorf("score = %d, want fuzzy keyword bonus %d", results[0].Score, scoreKeywordFuzzy)
	}
}

func TestSearchUnitsEmptyQuery(t *testing.T) {
	e := testEngine()
	if results := e.SearchUnits("", mathsCorpus()); len(results) != 0 {
		t.Errorf("empty query returned %d results, want none", len(results))
	}
	if results := e.SearchUnits("mathematics", nil); len(results) != 0 {
		t.Errorf("empty corpus returned %d results, want none", len(results))
	}
}

func TestSearchUnitsCapsResults(t *testing.T) {
	e := testEngine()
	subject := Subject{Name: "Mathematics"}
	for i := 0; i < 30; i++ {
		subject.Units = append(subject.Units, Unit{
			Name:     fmt.Sprintf("Unit %d", i+1),
			Filename: fmt.Sprintf("u%d.pdf", i+1),
		})
	}

	results := e.SearchUnits("mathematics", []Subject{subject})
	if len(results) != 20 {
		t.Errorf("got %d results, want capped at 20", len(results))
	}
}

func TestSearchDocumentsTypeMatch(t *testing.T) {
	e := testEngine()
	docs := []Document{
		{ID: "1", Name: "Semester 3 Schedule", Type: DocTypeTimetable},
		{ID: "2", Name: "Maths 2023 Paper", Type: DocTypePYQ},
	}

	results := e.SearchDocuments("timetable", docs)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ID != "1" {
		t.Errorf("matched %q, want the timetable document", results[0].ID)
	}
	if results[0].Score != scoreTypeMatch {
		t.Errorf("score = %d, want type bonus %d", results[0].Score, scoreTypeMatch)
	}
}

func TestSearchDocumentsRanking(t *testing.T) {
	e := testEngine()
	docs := []Document{
		{ID: "kw", Name: "Old Papers Bundle", Type: DocTypePYQ, Keywords: []string{"physics"}},
		{ID: "name", Name: "Physics 2024", Type: DocTypePYQ},
	}

	results := e.SearchDocuments("physics", docs)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != "name" {
		t.Errorf("top result = %q, want the name match first", results[0].ID)
	}
}

func TestSearchInfoThreshold(t *testing.T) {
	e := testEngine()
	items := []InfoItem{
		{Category: "fees", Title: "Fee Structure", Content: "Fees are due in July.", Keywords: []string{"fees"}},
		{Category: "misc", Title: "Campus Map", Content: "The fees office is in block B.", Keywords: []string{"map"}},
	}

	// Exact keyword equality scores 100; the content-only hit on the map
	// entry (20) stays below the relevance floor and is dropped.
	results := e.SearchInfo("fees", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Category != "fees" {
		t.Errorf("matched %q, want the fees entry", results[0].Category)
	}
	if results[0].Score < infoKeywordExact {
		t.Errorf("score = %d, want at least the exact keyword weight", results[0].Score)
	}
}

func TestSearchInfoTitleContainment(t *testing.T) {
	e := testEngine()
	items := []InfoItem{
		{Category: "library", Title: "Library Hours", Content: "Open 8am to 10pm."},
	}

	results := e.SearchInfo("library hours", items)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score < infoTitleContain {
		t.Errorf("score = %d, want at least the title weight", results[0].Score)
	}
}

func TestMatchKnowledge(t *testing.T) {
	e := testEngine()
	entries := []KnowledgeEntry{
		{Question: "what are the library timings", Answer: "8am to 10pm."},
		{Question: "how do I pay fees", Answer: "Online portal."},
	}

	answer, ok := e.MatchKnowledge("what are the library timing", entries)
	if !ok {
		t.Fatal("near-identical question did not match")
	}
	if answer != "8am to 10pm." {
		t.Errorf("answer = %q, want the library answer", answer)
	}

	if _, ok := e.MatchKnowledge("completely unrelated text", entries); ok {
		t.Error("unrelated query matched the knowledge base")
	}
}
