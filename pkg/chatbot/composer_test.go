package chatbot

import (
	"math/rand"
	"strings"
	"testing"

	"mentora-be/internal/constant"
	"mentora-be/pkg/nlp"
	"mentora-be/pkg/search"
)

func testComposer(onUnanswered UnansweredHook) *Composer {
	return NewComposer(
		nlp.NewNormalizer(),
		nlp.NewEmotionClassifier(constant.DefaultEmotionTable),
		rand.New(rand.NewSource(1)),
		onUnanswered,
	)
}

func inList(msg string, list []string) bool {
	for _, item := range list {
		if item == msg {
			return true
		}
	}
	return false
}

func TestGreeting(t *testing.T) {
	c := testComposer(nil)
	resp, ok := c.Greeting().(TextResponse)
	if !ok {
		t.Fatalf("got %T, want TextResponse", c.Greeting())
	}
	if !inList(resp.Message, constant.GreetingResponses) {
		t.Errorf("message %q not in the greeting pool", resp.Message)
	}
}

func TestFallbackNeverEmpty(t *testing.T) {
	c := testComposer(nil)
	for i := 0; i < 20; i++ {
		resp, ok := c.Fallback().(TextResponse)
		if !ok || resp.Message == "" {
			t.Fatalf("fallback produced an empty or non-text reply: %#v", resp)
		}
		if !inList(resp.Message, constant.PoliteFallbacks) {
			t.Errorf("message %q not in the fallback pool", resp.Message)
		}
	}
}

func TestMentalHealthFillsConcernContext(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp, ok := c.MentalHealth(n.Normalize("I'm so stressed about my exams")).(TextResponse)
	if !ok {
		t.Fatal("want a text reply")
	}
	if !strings.Contains(resp.Message, "about your studies") {
		t.Errorf("message %q missing the academic concern phrase", resp.Message)
	}
	if strings.Contains(resp.Message, constant.ContextPlaceholder) {
		t.Errorf("placeholder leaked into %q", resp.Message)
	}
}

func TestMentalHealthNoConcern(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp, ok := c.MentalHealth(n.Normalize("I am feeling happy")).(TextResponse)
	if !ok {
		t.Fatal("want a text reply")
	}
	if resp.Message == "" {
		t.Error("empty reply")
	}
	if strings.Contains(resp.Message, constant.ContextPlaceholder) {
		t.Errorf("placeholder leaked into %q", resp.Message)
	}
}

func TestMentalHealthNeutralFallsBack(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp, ok := c.MentalHealth(n.Normalize("okay")).(TextResponse)
	if !ok {
		t.Fatal("want a text reply")
	}
	if !inList(resp.Message, constant.PoliteFallbacks) {
		t.Errorf("neutral verdict should use the polite fallback pool, got %q", resp.Message)
	}
}

func composerCorpus() []search.Subject {
	return []search.Subject{
		{
			Name: "Mathematics",
			Units: []search.Unit{
				{Name: "Unit 1 Algebra", Filename: "algebra.pdf"},
				{Name: "Unit 2 Calculus", Filename: "calculus.pdf"},
			},
		},
		{
			Name:  "Physics",
			Units: []search.Unit{{Name: "Unit 1 Kinematics", Filename: "kin.pdf"}},
		},
	}
}

func TestNotesSoleSubjectBrowsesUnits(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp := c.Notes(n.Normalize("mathematics"), nil, composerCorpus())
	units, ok := resp.(UnitsListResponse)
	if !ok {
		t.Fatalf("got %T, want UnitsListResponse", resp)
	}
	if units.Subject != "Mathematics" {
		t.Errorf("subject = %q, want Mathematics", units.Subject)
	}
	if len(units.Units) != 2 {
		t.Errorf("got %d units, want 2", len(units.Units))
	}
	if units.Type != TypeUnitsList {
		t.Errorf("type = %q, want %q", units.Type, TypeUnitsList)
	}
}

func TestNotesRankedResults(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	results := []search.ScoredUnit{
		{Subject: "Mathematics", Unit: "Unit 1 Algebra", Score: 70},
	}
	resp := c.Notes(n.Normalize("notes for algebra"), results, composerCorpus())
	list, ok := resp.(NotesResultsResponse)
	if !ok {
		t.Fatalf("got %T, want NotesResultsResponse", resp)
	}
	if len(list.Results) != 1 || list.Results[0].Unit != "Unit 1 Algebra" {
		t.Errorf("results not passed through: %+v", list.Results)
	}
}

func TestNotesSubjectCatalogue(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp := c.Notes(n.Normalize("show me notes"), nil, composerCorpus())
	list, ok := resp.(SubjectsListResponse)
	if !ok {
		t.Fatalf("got %T, want SubjectsListResponse", resp)
	}
	if list.Subjects["Mathematics"] != 2 || list.Subjects["Physics"] != 1 {
		t.Errorf("unit counts wrong: %v", list.Subjects)
	}
}

func TestNotesEmptyCorpus(t *testing.T) {
	c := testComposer(nil)
	n := nlp.NewNormalizer()

	resp := c.Notes(n.Normalize("show me notes"), nil, nil)
	text, ok := resp.(TextResponse)
	if !ok {
		t.Fatalf("got %T, want TextResponse", resp)
	}
	if text.Message != constant.NoNotesMessage {
		t.Errorf("message = %q, want the empty-corpus text", text.Message)
	}
}

func TestArchiveResponses(t *testing.T) {
	c := testComposer(nil)

	results := []search.ScoredDocument{{ID: "1", Score: 40}}
	if _, ok := c.Archive(results, nil).(PYQResultsResponse); !ok {
		t.Error("ranked results should produce a pyq_results reply")
	}

	docs := []search.Document{
		{ID: "1", Type: search.DocTypePYQ},
		{ID: "2", Type: search.DocTypePYQ},
		{ID: "3", Type: search.DocTypeTimetable},
		{ID: "4"}, // untyped documents count as Others
	}
	list, ok := c.Archive(nil, docs).(PYQListResponse)
	if !ok {
		t.Fatal("catalogue fallback should produce a pyq_list reply")
	}
	want := map[string]int{"PYQ": 2, "Timetable": 1, "Others": 1}
	for k, v := range want {
		if list.Types[k] != v {
			t.Errorf("Types[%q] = %d, want %d", k, list.Types[k], v)
		}
	}

	text, ok := c.Archive(nil, nil).(TextResponse)
	if !ok || text.Message != constant.NoArchiveMessage {
		t.Errorf("empty corpus reply = %#v, want the empty-corpus text", text)
	}
}

func TestUnknownSingleInfo(t *testing.T) {
	c := testComposer(nil)

	resp, unanswered := c.Unknown("library hours", []search.ScoredInfo{
		{Title: "Library Hours", Content: "Open 8am to 10pm.", Score: 60},
	}, "", false)
	if unanswered {
		t.Error("answered query reported as unanswered")
	}
	text := resp.(TextResponse)
	if text.Message != "Open 8am to 10pm." {
		t.Errorf("message = %q, want the item content verbatim", text.Message)
	}
}

func TestUnknownMultipleInfo(t *testing.T) {
	c := testComposer(nil)

	resp, unanswered := c.Unknown("fees", []search.ScoredInfo{
		{Content: "Tuition is due in July.", Score: 100},
		{Content: "Hostel fees are separate.", Score: 50},
	}, "", false)
	if unanswered {
		t.Error("answered query reported as unanswered")
	}
	text := resp.(TextResponse)
	if !strings.Contains(text.Message, "Found 2 items") {
		t.Errorf("message %q missing the count header", text.Message)
	}
	if !strings.Contains(text.Message, "---") {
		t.Errorf("message %q missing the item separator", text.Message)
	}
	if !strings.Contains(text.Message, "1. Tuition is due in July.") {
		t.Errorf("message %q missing the first numbered item", text.Message)
	}
}

func TestUnknownKnowledgeAnswer(t *testing.T) {
	c := testComposer(nil)

	resp, unanswered := c.Unknown("library timings", nil, "8am to 10pm.", true)
	if unanswered {
		t.Error("answered query reported as unanswered")
	}
	if resp.(TextResponse).Message != "8am to 10pm." {
		t.Errorf("message = %q, want the knowledge answer", resp.(TextResponse).Message)
	}
}

func TestUnknownInvokesHook(t *testing.T) {
	var captured string
	c := testComposer(func(raw string) { captured = raw })

	resp, unanswered := c.Unknown("what is the wifi password", nil, "", false)
	if !unanswered {
		t.Error("unanswered query not reported")
	}
	if captured != "what is the wifi password" {
		t.Errorf("hook captured %q, want the raw query", captured)
	}
	if resp.(TextResponse).Message != constant.UnknownFallbackMessage {
		t.Errorf("message = %q, want the unknown fallback", resp.(TextResponse).Message)
	}
}

func TestSessionExpiredResponse(t *testing.T) {
	resp := NewSessionExpiredResponse(constant.SessionExpiredMessage)
	if resp.Type != TypeError || resp.Error != ErrSessionExpired {
		t.Errorf("unexpected envelope: %#v", resp)
	}
	if resp.Message != constant.SessionExpiredMessage {
		t.Errorf("message = %q", resp.Message)
	}
}
