package dto

import "time"

// ChatbotRequest is the body of POST /chatbot.
type ChatbotRequest struct {
	Question string `json:"question" validate:"max=2000"`
}

// ChatbotResponse carries the answer in markdown and rendered HTML.
type ChatbotResponse struct {
	Response     string    `json:"response"`
	ResponseHTML string    `json:"response_html"`
	Category     string    `json:"category"`
	Ticker       string    `json:"ticker,omitempty"`
	Source       string    `json:"source"`
	Timestamp    time.Time `json:"timestamp"`
}
