package constant

import "mentora-be/pkg/nlp"

// DefaultSynonyms seeds the synonym table when the repository has none.
// Canonical term -> accepted alternates. Expansion is additive, so a
// query keeps its own words and gains the canonical vocabulary.
var DefaultSynonyms = nlp.SynonymTable{
	"exam":      {"test", "examination", "quiz", "assessment"},
	"notes":     {"note", "material", "materials", "handout", "handouts"},
	"pyq":       {"previous year questions", "past papers", "old papers", "question papers"},
	"timetable": {"schedule", "time table", "routine"},
	"subject":   {"course", "discipline"},
	"unit":      {"chapter", "module", "topic"},
	"teacher":   {"professor", "faculty", "instructor", "lecturer"},
	"fees":      {"fee", "tuition", "payment"},
	"marks":     {"grades", "score", "result", "results"},
}
