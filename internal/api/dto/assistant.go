package dto

import (
	"time"

	"github.com/sanikac1014/Altu-health-app/internal/domain/insights"
)

// AskRequest is one natural-language question. Chart optionally names the
// dashboard chart the question was asked from; it tightens the answer
// token budget.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	Chart    string `json:"chart"`
}

// AskResponse is the assistant's answer plus the exact values that were
// injected into the prompt.
type AskResponse struct {
	ID        string            `json:"id"`
	Question  string            `json:"question"`
	Chart     string            `json:"chart,omitempty"`
	Answer    string            `json:"answer"`
	Insights  insights.Insights `json:"insights"`
	CreatedAt time.Time         `json:"created_at"`
}
