package chatbot

import "testing"

func TestValidSession(t *testing.T) {
	tests := []struct {
		name        string
		login       string
		lastChanged string
		want        bool
	}{
		{"login after change", "2026-02-10T09:00:00Z", "2026-02-01T00:00:00Z", true},
		{"login equals change", "2026-02-01T00:00:00Z", "2026-02-01T00:00:00Z", true},
		{"login before change", "2026-01-20T09:00:00Z", "2026-02-01T00:00:00Z", false},
		{"missing login", "", "2026-02-01T00:00:00Z", false},
		{"missing change marker", "2026-02-10T09:00:00Z", "", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSession(tt.login, tt.lastChanged); got != tt.want {
				t.Errorf("ValidSession(%q, %q) = %v, want %v", tt.login, tt.lastChanged, got, tt.want)
			}
		})
	}
}
