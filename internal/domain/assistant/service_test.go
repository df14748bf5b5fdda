package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanikac1014/Altu-health-app/internal/ai"
	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

type fakeCompleter struct {
	answer       string
	err          error
	gotMessages  []ai.Message
	gotMaxTokens int
}

func (f *fakeCompleter) Complete(_ context.Context, messages []ai.Message, maxTokens int) (string, error) {
	f.gotMessages = messages
	f.gotMaxTokens = maxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeSource struct {
	healthRecords []health.HealthRecord
	screenRecords []health.ScreenTimeRecord
}

func (f *fakeSource) HealthRecords(_ context.Context) []health.HealthRecord {
	return f.healthRecords
}

func (f *fakeSource) ScreenTimeRecords(_ context.Context) []health.ScreenTimeRecord {
	return f.screenRecords
}

func newTestService(completer ai.Completer, source metrics.DataSource) Service {
	log := logger.NewLogger("error")
	return NewService(Config{
		Completer:        completer,
		Metrics:          metrics.NewService(source, log),
		Source:           source,
		Logger:           log,
		ChartMaxTokens:   250,
		GeneralMaxTokens: 300,
	})
}

func populatedSource() *fakeSource {
	return &fakeSource{
		healthRecords: []health.HealthRecord{
			{Date: "2026-08-10", Steps: 9000, SleepMinutes: 450, WorkoutMinutes: 30},
			{Date: "2026-08-11", Steps: 11000, SleepMinutes: 470, WorkoutMinutes: 20},
		},
		screenRecords: []health.ScreenTimeRecord{
			{Date: "2026-08-10", App: "Instagram", Minutes: 80, Category: "Social"},
			{Date: "2026-08-11", App: "YouTube", Minutes: 120, Category: "Entertainment"},
		},
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	svc := newTestService(&fakeCompleter{}, populatedSource())

	tests := []struct {
		name     string
		question string
	}{
		{name: "Empty string", question: ""},
		{name: "Whitespace only", question: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ask(context.Background(), AskInput{Question: tt.question})
			assert.ErrorIs(t, err, ErrEmptyQuestion)
		})
	}
}

func TestAskReturnsCompletion(t *testing.T) {
	completer := &fakeCompleter{answer: "You use YouTube the most."}
	svc := newTestService(completer, populatedSource())

	answer, err := svc.Ask(context.Background(), AskInput{Question: "Which app do I use the most?"})

	require.NoError(t, err)
	assert.Equal(t, "You use YouTube the most.", answer.Answer)
	assert.Equal(t, "Which app do I use the most?", answer.Question)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", answer.ID.String())
	assert.False(t, answer.CreatedAt.IsZero())

	// The extreme-usage rule fired and its exact answer went into the prompt.
	require.NotNil(t, answer.Insights.MostUsedApp)
	assert.Equal(t, "YouTube", answer.Insights.MostUsedApp.App)

	require.Len(t, completer.gotMessages, 2)
	assert.Equal(t, "system", completer.gotMessages[0].Role)
	assert.Equal(t, "user", completer.gotMessages[1].Role)
	assert.Contains(t, completer.gotMessages[1].Content, "YouTube")
	assert.Contains(t, completer.gotMessages[1].Content, "Which app do I use the most?")
}

func TestAskTokenBudgetByScope(t *testing.T) {
	tests := []struct {
		name      string
		chart     string
		maxTokens int
	}{
		{name: "General question", chart: "", maxTokens: 300},
		{name: "Chart-scoped question", chart: "screen_time", maxTokens: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{answer: "ok"}
			svc := newTestService(completer, populatedSource())

			_, err := svc.Ask(context.Background(), AskInput{Question: "how are my steps", Chart: tt.chart})

			require.NoError(t, err)
			assert.Equal(t, tt.maxTokens, completer.gotMaxTokens)
		})
	}
}

func TestAskPropagatesMissingAPIKey(t *testing.T) {
	completer := &fakeCompleter{err: ai.ErrMissingAPIKey}
	svc := newTestService(completer, populatedSource())

	_, err := svc.Ask(context.Background(), AskInput{Question: "anything"})

	assert.ErrorIs(t, err, ai.ErrMissingAPIKey)
}

func TestAskWorksWithEmptyDatasets(t *testing.T) {
	completer := &fakeCompleter{answer: "No data is loaded."}
	svc := newTestService(completer, &fakeSource{})

	answer, err := svc.Ask(context.Background(), AskInput{Question: "how are my steps"})

	require.NoError(t, err)
	assert.Equal(t, "No data is loaded.", answer.Answer)
	assert.True(t, answer.Insights.Empty() || answer.Insights.Trend == nil)
}
