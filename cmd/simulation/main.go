package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/chatbot"

// Simplified envelopes for the script
type loginResponse struct {
	Data struct {
		SessionId string `json:"session_id"`
	} `json:"data"`
}

type chatRequest struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Data struct {
		Intent   string          `json:"intent"`
		Response json.RawMessage `json:"response"`
	} `json:"data"`
}

func main() {
	color.Cyan("=== Mentora Chatbot Simulation Client ===")

	password := os.Getenv("CHATBOT_PASSWORD")
	if password == "" {
		password = "mentora123"
	}

	sessionID, err := login(password)
	if err != nil {
		log.Fatalf("Failed to login: %v", err)
	}
	color.Green("Session created: %s", sessionID)

	testCases := []string{
		"hello",
		"can you show me the maths notes",
		"any previous year papers?",
		"when is the timetable coming",
		"I feel so stressed about my exams",
		"what are the library timings",
		"",
	}

	for _, text := range testCases {
		color.Yellow("\nUSER: %q", text)

		start := time.Now()
		intent, reply, err := sendChat(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		color.Magenta("intent=%s (%v)", intent, elapsed)
		color.White("BOT: %s", reply)
	}
}

func login(password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"password": password})

	resp, err := http.Post(baseURL+"/login", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.Data.SessionId, nil
}

func sendChat(sessionID, text string) (string, string, error) {
	payload, _ := json.Marshal(chatRequest{SessionId: sessionID, Message: text})

	resp, err := http.Post(baseURL+"/chat", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", "", err
	}
	return res.Data.Intent, string(res.Data.Response), nil
}
