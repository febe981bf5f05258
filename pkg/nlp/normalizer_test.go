package nlp

import (
	"reflect"
	"testing"
)

func TestNormalizeClean(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name      string
		raw       string
		wantClean string
	}{
		{"empty", "", ""},
		{"lowercases", "HELLO World", "hello world"},
		{"keeps emotional punctuation", "I'm sad!!! really??", "i m sad!!! really??"},
		{"strips symbols", "math @#$ notes", "math notes"},
		{"collapses whitespace", "  too   many\t spaces ", "too many spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if got.CleanText != tt.wantClean {
				t.Errorf("CleanText = %q, want %q", got.CleanText, tt.wantClean)
			}
		})
	}
}

func TestNormalizeEmptyNeverFails(t *testing.T) {
	n := NewNormalizer()
	got := n.Normalize("")
	if got.CleanText != "" || len(got.Tokens) != 0 {
		t.Errorf("Normalize(\"\") = %+v, want empty result", got)
	}
}

func TestNormalizeStopWords(t *testing.T) {
	n := NewNormalizer()

	// "the" and "a" go; the emotional retention set must survive.
	got := n.Normalize("I am not very happy with the results, can not sleep")
	want := []string{"not", "very", "happy", "result", "can", "not", "sleep"}
	if !reflect.DeepEqual(got.Tokens, want) {
		t.Errorf("Tokens = %v, want %v", got.Tokens, want)
	}
}

func TestNormalizeRetentionSet(t *testing.T) {
	n := NewNormalizer()
	for _, word := range []string{"no", "not", "very", "too", "down", "up", "can", "cannot"} {
		got := n.Normalize("feeling " + word)
		found := false
		for _, tok := range got.Tokens {
			if tok == word {
				found = true
			}
		}
		if !found {
			t.Errorf("retained word %q was filtered out: tokens=%v", word, got.Tokens)
		}
	}
}

func TestLemma(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tests", "test"},
		{"studies", "study"},
		{"classes", "class"},
		{"boxes", "box"},
		{"glasses", "glass"},
		{"stress", "stress"},
		{"campus", "campus"},
		{"analysis", "analysis"},
		{"exam", "exam"},
		{"ups", "ups"}, // short tokens pass through
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Lemma(tt.in); got != tt.want {
				t.Errorf("Lemma(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeWithoutLemmatizer(t *testing.T) {
	n := NewNormalizer(WithoutLemmatizer())
	got := n.Normalize("exams and projects")
	want := []string{"exams", "projects"}
	if !reflect.DeepEqual(got.Tokens, want) {
		t.Errorf("Tokens = %v, want %v", got.Tokens, want)
	}
}
