package nlp

// SynonymTable maps a canonical term to its accepted alternates, e.g.
// "exam" -> ["test", "examination", "quiz"]. Immutable after load.
type SynonymTable map[string][]string

// Expand widens a token set with canonical terms and their alternates.
// A word triggers expansion when it equals a canonical term or appears in
// a synonym list. Expansion is additive: the original words always remain.
func (t SynonymTable) Expand(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	expanded := make([]string, 0, len(words))

	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		expanded = append(expanded, w)
	}

	for _, w := range words {
		add(w)
	}
	for _, w := range words {
		for canon, alternates := range t {
			if w == canon {
				for _, alt := range alternates {
					add(alt)
				}
				continue
			}
			for _, alt := range alternates {
				if w == alt {
					add(canon)
					for _, other := range alternates {
						add(other)
					}
					break
				}
			}
		}
	}

	return expanded
}

// Canonical reports whether any of the words maps to the given canonical
// term, either directly or through a synonym.
func (t SynonymTable) Canonical(words []string, canon string) bool {
	alternates := t[canon]
	for _, w := range words {
		if w == canon {
			return true
		}
		for _, alt := range alternates {
			if w == alt {
				return true
			}
		}
	}
	return false
}
