package dto

import "mentora-be/pkg/chatbot"

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionId string           `json:"session_id"`
	Intent    string           `json:"intent"`
	Response  chatbot.Response `json:"response"`
}

type ChatbotLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type ChatbotLoginResponse struct {
	SessionId      string `json:"session_id"`
	LoginTimestamp string `json:"login_timestamp"`
}

// UnansweredQueryMessage travels over the internal event bus from the
// chat path to the consumer that persists unanswered queries.
type UnansweredQueryMessage struct {
	Query   string `json:"query"`
	AskedAt string `json:"asked_at"`
}
