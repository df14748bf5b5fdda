package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/internal/ai"
	"github.com/sanikac1014/Altu-health-app/internal/domain/insights"
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

var (
	// ErrEmptyQuestion is returned when the question is blank.
	ErrEmptyQuestion = errors.New("question must not be empty")
)

const systemPrompt = "You are a personal health and screen-time assistant. " +
	"Answer the user's question using ONLY the computed metrics and exact " +
	"values provided below. The exact values are authoritative; never guess " +
	"or estimate numbers that are given. Keep answers short and concrete."

// Service answers natural-language questions about the loaded datasets.
type Service interface {
	Ask(ctx context.Context, input AskInput) (*Answer, error)
}

// Config wires the assistant's collaborators and token budgets.
type Config struct {
	Completer        ai.Completer
	Metrics          metrics.Service
	Source           metrics.DataSource
	Logger           *logger.Logger
	ChartMaxTokens   int
	GeneralMaxTokens int
}

type service struct {
	completer        ai.Completer
	metrics          metrics.Service
	source           metrics.DataSource
	logger           *logger.Logger
	chartMaxTokens   int
	generalMaxTokens int
}

// NewService creates the assistant service.
func NewService(config Config) Service {
	return &service{
		completer:        config.Completer,
		metrics:          config.Metrics,
		source:           config.Source,
		logger:           config.Logger,
		chartMaxTokens:   config.ChartMaxTokens,
		generalMaxTokens: config.GeneralMaxTokens,
	}
}

func (s *service) Ask(ctx context.Context, input AskInput) (*Answer, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	healthRecords := s.source.HealthRecords(ctx)
	screenRecords := s.source.ScreenTimeRecords(ctx)
	computed := insights.Extract(question, healthRecords, screenRecords)

	m, err := s.metrics.Dashboard(ctx)
	if err != nil && !errors.Is(err, metrics.ErrNoData) {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}

	prompt, err := buildUserPrompt(question, input.Chart, m, computed)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	maxTokens := s.generalMaxTokens
	if input.Chart != "" {
		maxTokens = s.chartMaxTokens
	}

	answerText, err := s.completer.Complete(ctx, []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}, maxTokens)
	if err != nil {
		s.logger.Error("assistant completion failed",
			zap.String("question", question),
			zap.Error(err),
		)
		return nil, err
	}

	answer := &Answer{
		ID:        uuid.New(),
		Question:  question,
		Chart:     input.Chart,
		Answer:    answerText,
		Insights:  computed,
		CreatedAt: time.Now().UTC(),
	}

	s.logger.Info("answered assistant question",
		zap.String("interaction_id", answer.ID.String()),
		zap.Strings("matched_rules", computed.MatchedRules),
		zap.Int("max_tokens", maxTokens),
	)
	return answer, nil
}

// buildUserPrompt serializes the metrics and any computed exact answers
// into the user message. Insights go in verbatim as JSON so the model
// cannot misread the numbers.
func buildUserPrompt(question, chart string, m metrics.Metrics, computed insights.Insights) (string, error) {
	var b strings.Builder

	if chart != "" {
		fmt.Fprintf(&b, "The user is looking at the %q chart.\n\n", chart)
	}

	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	b.WriteString("Dashboard metrics:\n")
	b.Write(metricsJSON)
	b.WriteString("\n")

	if !computed.Empty() {
		insightsJSON, err := json.Marshal(computed)
		if err != nil {
			return "", err
		}
		b.WriteString("\nExact pre-computed answers for this question:\n")
		b.Write(insightsJSON)
		b.WriteString("\n")
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String(), nil
}
