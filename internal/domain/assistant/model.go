package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanikac1014/Altu-health-app/internal/domain/insights"
)

// AskInput is one question from the user. Chart names the dashboard chart
// the question was asked from, or is empty for a general question; it only
// affects the prompt framing and the answer token budget.
type AskInput struct {
	Question string
	Chart    string
}

// Answer is the assistant's reply plus the exact values that were injected
// into the prompt, so callers can show the grounding alongside the text.
type Answer struct {
	ID        uuid.UUID         `json:"id"`
	Question  string            `json:"question"`
	Chart     string            `json:"chart,omitempty"`
	Answer    string            `json:"answer"`
	Insights  insights.Insights `json:"insights"`
	CreatedAt time.Time         `json:"created_at"`
}
