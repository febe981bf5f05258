package chatbot

// ValidSession reports whether a login is still valid against the last
// password change. Both values are ISO-8601 timestamps, so lexicographic
// comparison is chronological comparison: a login taken at or after the
// last change is valid, anything earlier (or missing) is not.
func ValidSession(loginTimestamp, lastChanged string) bool {
	if loginTimestamp == "" || lastChanged == "" {
		return false
	}
	return loginTimestamp >= lastChanged
}
