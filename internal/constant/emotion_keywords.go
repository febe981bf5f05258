package constant

import "mentora-be/pkg/nlp"

// DefaultEmotionTable is the closed emotion set with its keyword lists.
// Order matters: classification ties resolve to the first declared label.
// Keywords intentionally overlap between labels ("crushed" is both sad and
// disappointed); overlap is scored, not rejected.
var DefaultEmotionTable = nlp.EmotionTable{
	{Label: "anxious", Keywords: []string{
		"anxious", "anxiety", "worried", "nervous", "panic", "fear", "afraid",
		"scared", "tense", "uneasy", "restless", "on edge", "apprehensive",
		"frightened", "terrified", "phobia", "dread", "foreboding", "jittery",
		"shaky", "sweating", "palpitations", "racing heart", "cant breathe",
		"hyperventilating",
	}},
	{Label: "sad", Keywords: []string{
		"sad", "depressed", "depression", "unhappy", "miserable", "down",
		"blue", "gloomy", "heartbroken", "crying", "tears", "hopeless",
		"despair", "melancholy", "grief", "mourning", "devastated", "crushed",
		"empty", "numb", "worthless", "pathetic", "meaningless", "darkness",
		"void",
	}},
	{Label: "stressed", Keywords: []string{
		"stressed", "stress", "overwhelmed", "pressure", "burnout",
		"exhausted", "tired", "fatigue", "drained", "worn out", "overworked",
		"burdened", "swamped", "drowning", "suffocating", "cant cope",
		"too much", "breaking point", "at my limit", "fed up", "had enough",
	}},
	{Label: "confused", Keywords: []string{
		"confused", "confusion", "uncertain", "unsure", "lost", "clueless",
		"puzzled", "bewildered", "dont know", "unclear", "ambiguous",
		"mixed up", "disoriented", "perplexed", "baffled", "stumped",
		"dont understand", "making sense", "figure out",
	}},
	{Label: "lonely", Keywords: []string{
		"lonely", "alone", "loneliness", "isolated", "no one", "nobody",
		"by myself", "empty", "solitary", "secluded", "withdrawn",
		"abandoned", "rejected", "unwanted", "invisible", "forgotten",
		"left out", "excluded", "misunderstood",
	}},
	{Label: "happy", Keywords: []string{
		"happy", "happiness", "joy", "glad", "pleased", "delighted",
		"cheerful", "excited", "good", "great", "wonderful", "amazing",
		"fantastic", "awesome", "ecstatic", "euphoric", "elated", "jubilant",
		"thrilled", "overjoyed", "content", "satisfied",
	}},
	{Label: "calm", Keywords: []string{
		"calm", "peaceful", "relaxed", "serene", "tranquil", "at ease",
		"comfortable", "content", "satisfied", "composed", "collected",
		"centered", "balanced", "grounded", "zen", "untroubled", "placid",
		"still", "quiet", "restful",
	}},
	{Label: "angry", Keywords: []string{
		"angry", "anger", "mad", "furious", "irritated", "annoyed",
		"frustrated", "upset", "resentful", "rage", "outraged", "enraged",
		"infuriated", "livid", "irate", "incensed", "aggravated", "provoked",
		"hostile", "bitter",
	}},
	{Label: "guilty", Keywords: []string{
		"guilty", "guilt", "regret", "ashamed", "embarrassed", "sorry",
		"my fault", "blame", "remorse", "bad", "wrong", "mistake", "failure",
		"let down", "disappointed", "should have", "could have",
	}},
	{Label: "proud", Keywords: []string{
		"proud", "pride", "accomplished", "achievement", "success",
		"succeeded", "did it", "made it", "triumph", "victory", "won",
		"excelled", "mastered", "completed", "finished", "done well",
		"impressed",
	}},
	{Label: "relieved", Keywords: []string{
		"relieved", "relief", "better", "glad its over", "weight lifted",
		"breathing again", "sigh of relief", "pressure off", "free",
		"unburdened", "restored", "recovered", "safe", "secure",
	}},
	{Label: "grateful", Keywords: []string{
		"grateful", "gratitude", "thankful", "appreciate", "blessed",
		"lucky", "thank you", "fortunate", "privileged", "thankful for",
		"appreciation", "recognition", "acknowledgment",
	}},
	{Label: "motivated", Keywords: []string{
		"motivated", "motivation", "inspired", "driven", "determined",
		"focused", "ready", "energized", "enthusiastic", "passionate",
		"committed", "dedicated", "ambitious", "goal-oriented", "proactive",
	}},
	{Label: "excited", Keywords: []string{
		"excited", "excitement", "thrilled", "enthusiastic", "eager",
		"looking forward", "anticipation", "cant wait", "pumped", "stoked",
		"hyped", "animated", "vibrant",
	}},
	{Label: "disappointed", Keywords: []string{
		"disappointed", "disappointment", "let down", "failed", "failure",
		"didnt work out", "not good enough", "fell short", "missed", "lost",
		"defeated", "crushed",
	}},
	{Label: "worried", Keywords: []string{
		"worried", "worry", "concerned", "concern", "troubled", "bothered",
		"disturbed", "uneasy", "apprehensive", "fearful", "afraid", "scared",
	}},
	{Label: "tired", Keywords: []string{
		"tired", "exhausted", "fatigued", "weary", "drained", "worn out",
		"sleepy", "drowsy", "lethargic", "no energy", "burned out",
	}},
}

// ConcernKeywords groups life-area keywords used to derive the short
// context phrase substituted into emotion templates.
var ConcernKeywords = map[string][]string{
	"academic": {
		"study", "studying", "exam", "exams", "test", "tests", "grades",
		"marks", "assignment", "assignments", "project", "projects", "class",
		"classes", "course", "courses", "subject", "subjects", "semester",
		"term", "college", "university",
	},
	"social": {
		"friends", "friendship", "relationship", "relationships", "people",
		"social", "talk", "talking", "communication", "alone", "lonely",
		"isolated",
	},
	"sleep": {
		"sleep", "sleeping", "insomnia", "sleepless", "awake", "night",
		"nights", "tired", "fatigue", "rest", "restless",
	},
	"future": {
		"future", "career", "job", "jobs", "work", "employment",
		"professional", "path", "direction", "goals", "ambition",
	},
	"family": {
		"family", "parents", "parent", "mother", "father", "sibling",
		"siblings", "brother", "sister", "home", "house",
	},
	"health": {
		"health", "healthy", "sick", "illness", "disease", "pain", "ache",
		"headache", "stomach", "body", "exercise", "diet",
	},
}

// ConcernContexts maps a concern to its template context phrase, in the
// precedence order the composer applies (first hit wins).
var ConcernContexts = []struct {
	Concern string
	Phrase  string
}{
	{"academic", " about your studies"},
	{"social", " in your relationships"},
	{"sleep", " and struggling with sleep"},
	{"future", " about your future"},
	{"family", " with your family"},
	{"health", " about your health"},
}

// Intent keyword sets, tested in the router's fixed priority order.
var (
	GreetingKeywords = []string{
		"hi", "hello", "hey", "help", "hola", "good morning", "good evening",
		"good afternoon", "whats up", "sup",
	}

	NotesKeywords = []string{
		"note", "notes", "material", "materials", "pdf", "unit", "chapter",
		"subject", "syllabus", "study material", "handout",
	}

	ArchiveKeywords = []string{
		"pyq", "previous year", "past paper", "old paper", "question paper",
		"exam paper", "timetable", "time table", "schedule",
	}
)
