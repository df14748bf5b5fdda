package metrics

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

var (
	// ErrNoData is returned when neither dataset has any records to
	// aggregate.
	ErrNoData = errors.New("no health or screen time data available")
)

// DataSource provides the loaded datasets. The dataset store implements it.
type DataSource interface {
	HealthRecords(ctx context.Context) []health.HealthRecord
	ScreenTimeRecords(ctx context.Context) []health.ScreenTimeRecord
}

// Service computes dashboard metrics from the loaded datasets.
type Service interface {
	Dashboard(ctx context.Context) (Metrics, error)
}

type service struct {
	source DataSource
	logger *logger.Logger
}

// NewService creates a metrics service backed by the given data source.
func NewService(source DataSource, logger *logger.Logger) Service {
	return &service{
		source: source,
		logger: logger,
	}
}

func (s *service) Dashboard(ctx context.Context) (Metrics, error) {
	healthRecords := s.source.HealthRecords(ctx)
	screenRecords := s.source.ScreenTimeRecords(ctx)

	if len(healthRecords) == 0 && len(screenRecords) == 0 {
		return Metrics{}, ErrNoData
	}

	m := Compute(healthRecords, screenRecords)
	s.logger.Info("computed dashboard metrics",
		zap.Int("health_days", len(healthRecords)),
		zap.Int("screen_time_records", len(screenRecords)),
		zap.Int("wellness_score", m.Wellness.Score),
	)
	return m, nil
}
