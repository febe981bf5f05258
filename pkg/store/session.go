package store

// Session is the in-memory chat session state. Sessions are created on a
// successful chatbot login and die with the cache TTL; nothing about the
// conversation is persisted.
type Session struct {
	ID string `json:"id"`

	// LoginTimestamp is the ISO-8601 instant the session was issued. The
	// session gate compares it against the credential's last password
	// change.
	LoginTimestamp string `json:"login_timestamp"`

	// Exchanges counts request/reply pairs served on this session.
	Exchanges int `json:"exchanges"`

	// LastQuery keeps the most recent user message for transcript logs.
	LastQuery string `json:"last_query"`
}
