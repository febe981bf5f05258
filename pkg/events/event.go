package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_HANDLED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the shared implementation used by the constructors below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeChatHandled     = "CHAT_HANDLED"
	TypeQueryUnanswered = "QUERY_UNANSWERED"
	TypePasswordChanged = "PASSWORD_CHANGED"
)

// NewChatHandledEvent records one served chat exchange for analytics.
func NewChatHandledEvent(sessionID, intent, emotion string) Event {
	return BaseEvent{
		Type: TypeChatHandled,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"intent":     intent,
			"emotion":    emotion,
		},
		OccurredAt: time.Now(),
	}
}

// NewQueryUnansweredEvent records a query the bot could not answer.
func NewQueryUnansweredEvent(query string) Event {
	return BaseEvent{
		Type: TypeQueryUnanswered,
		Data: map[string]interface{}{
			"query": query,
		},
		OccurredAt: time.Now(),
	}
}

// NewPasswordChangedEvent records a chatbot access-password rotation.
// Existing sessions become invalid from this instant.
func NewPasswordChangedEvent(changedAt string) Event {
	return BaseEvent{
		Type: TypePasswordChanged,
		Data: map[string]interface{}{
			"changed_at": changedAt,
		},
		OccurredAt: time.Now(),
	}
}
