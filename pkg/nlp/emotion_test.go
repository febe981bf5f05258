package nlp

import "testing"

func testTable() EmotionTable {
	return EmotionTable{
		{Label: "happy", Keywords: []string{"happy", "joy", "glad"}},
		{Label: "sad", Keywords: []string{"sad", "unhappy", "feeling down"}},
		{Label: "anxious", Keywords: []string{"anxious", "worried", "panic"}},
	}
}

func TestClassifyExactMatchDominance(t *testing.T) {
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	v := c.Classify(n.Normalize("I am happy today"))
	if v.Label != "happy" {
		t.Errorf("label = %q, want happy", v.Label)
	}
	if v.Confidence <= 0 || v.Confidence > 1 {
		t.Errorf("confidence = %f, want (0, 1]", v.Confidence)
	}
}

func TestClassifyNeutralOnNoSignal(t *testing.T) {
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	v := c.Classify(n.Normalize("the library opens at nine"))
	if v.Label != EmotionNeutral {
		t.Errorf("label = %q, want neutral", v.Label)
	}
	if v.Confidence != 0.0 {
		t.Errorf("confidence = %f, want 0", v.Confidence)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	v := c.Classify(n.Normalize(""))
	if v.Label != EmotionNeutral || v.Confidence != 0.0 {
		t.Errorf("got %+v, want neutral/0", v)
	}
}

func TestClassifyDeterminism(t *testing.T) {
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	norm := n.Normalize("worried and sad about exams")
	first := c.Classify(norm)
	for i := 0; i < 10; i++ {
		if got := c.Classify(norm); got != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", got, first)
		}
	}
}

func TestClassifyTypoTolerance(t *testing.T) {
	// Scenario: "I'm feeling hapy today" should still land on happy via
	// the fuzzy tier.
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	v := c.Classify(n.Normalize("I'm feeling hapy today"))
	if v.Label != "happy" {
		t.Errorf("label = %q, want happy", v.Label)
	}
	if v.Confidence <= 0 {
		t.Errorf("confidence = %f, want > 0", v.Confidence)
	}
}

func TestClassifyFuzzyBoundaryStrict(t *testing.T) {
	// Ratio("abc", "abcxxxx") is exactly 0.6; the fuzzy tier requires a
	// strictly greater ratio, so this must score nothing.
	table := EmotionTable{{Label: "boundary", Keywords: []string{"abc"}}}
	c := NewEmotionClassifier(table)

	// CleanText omits the keyword so the phrase tier stays quiet.
	atBoundary := Normalized{CleanText: "zzzzz", Tokens: []string{"abcxxxx"}}
	if v := c.Classify(atBoundary); v.Label != EmotionNeutral {
		t.Errorf("ratio 0.6 triggered the fuzzy bonus: %+v", v)
	}

	// Ratio("abc", "abcxx") = 0.75 clears the threshold. The phrase tier
	// must not interfere, so the clean text omits the keyword.
	above := Normalized{CleanText: "zzzzz", Tokens: []string{"abcxx"}}
	if v := c.Classify(above); v.Label != "boundary" {
		t.Errorf("ratio above 0.6 did not trigger: %+v", v)
	}
}

func TestClassifyPhraseTier(t *testing.T) {
	// Multi-word keywords can't appear as single tokens; the phrase tier
	// catches them in the cleaned text.
	n := NewNormalizer()
	c := NewEmotionClassifier(testTable())

	v := c.Classify(n.Normalize("I have been feeling down lately"))
	if v.Label != "sad" {
		t.Errorf("label = %q, want sad", v.Label)
	}
}

func TestClassifyTieBreakDeclarationOrder(t *testing.T) {
	table := EmotionTable{
		{Label: "first", Keywords: []string{"alpha"}},
		{Label: "second", Keywords: []string{"beta"}},
	}
	c := NewEmotionClassifier(table)

	norm := Normalized{CleanText: "alpha beta", Tokens: []string{"alpha", "beta"}}
	if v := c.Classify(norm); v.Label != "first" {
		t.Errorf("tie broke to %q, want first-declared label", v.Label)
	}
}

func TestClassifyConfidenceFormula(t *testing.T) {
	table := EmotionTable{
		{Label: "a", Keywords: []string{"alpha"}},
		{Label: "b", Keywords: []string{"beta"}},
	}
	c := NewEmotionClassifier(table)

	// alpha exact (2.0) + beta exact (2.0): total 4.0, winner 2.0,
	// confidence = 2.0 / max(4.0*0.5, 1.0) = 1.0.
	norm := Normalized{CleanText: "alpha beta", Tokens: []string{"alpha", "beta"}}
	if v := c.Classify(norm); v.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", v.Confidence)
	}

	// Single fuzzy hit: winner 0.8, total 0.8, denom max(0.4, 1.0) = 1.0.
	solo := Normalized{CleanText: "alphx", Tokens: []string{"alphx"}}
	if v := c.Classify(solo); v.Confidence != 0.8 {
		t.Errorf("confidence = %f, want 0.8", v.Confidence)
	}
}
