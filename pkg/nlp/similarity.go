package nlp

// Ratio computes a Ratcliff/Obershelp similarity between two strings:
// 2 * matching_chars / (len(a) + len(b)), where matching characters are
// counted by recursively anchoring on the longest common substring.
// Result is in [0, 1]. Two empty strings are considered identical.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matches := matchingChars([]byte(a), []byte(b))
	return 2.0 * float64(matches) / float64(len(a)+len(b))
}

func matchingChars(a, b []byte) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingChars(a[:ai], b[:bi])
	total += matchingChars(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonSubstring returns the start offsets and length of the
// longest block of bytes common to a and b. On equal lengths the
// earliest block in a wins, matching difflib's SequenceMatcher.
func longestCommonSubstring(a, b []byte) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the match length ending at a[i-1], b[j-1]
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestSize {
					bestSize = curr[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	return bestA, bestB, bestSize
}
