package dataset

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
	"github.com/sanikac1014/Altu-health-app/pkg/logger"
)

// Store holds the two static datasets in memory. Records are loaded once
// at startup and never mutated afterwards, so reads need no locking; the
// mutex only guards the load itself.
type Store struct {
	mu            sync.Mutex
	healthRecords []health.HealthRecord
	screenRecords []health.ScreenTimeRecord
	logger        *logger.Logger
}

// NewStore creates an empty store.
func NewStore(logger *logger.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads both dataset files concurrently. A missing or malformed file
// degrades to an empty dataset with a diagnostic log entry; Load itself
// never fails, so the server always comes up.
func (s *Store) Load(healthPath, screenTimePath string) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		records := loadJSON[health.HealthRecord](healthPath, s.logger)
		health.SortChronological(records)
		s.mu.Lock()
		s.healthRecords = records
		s.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		records := loadJSON[health.ScreenTimeRecord](screenTimePath, s.logger)
		health.SortScreenTimeChronological(records)
		s.mu.Lock()
		s.screenRecords = records
		s.mu.Unlock()
	}()

	wg.Wait()

	s.logger.Info("datasets loaded",
		zap.Int("health_records", len(s.healthRecords)),
		zap.Int("screen_time_records", len(s.screenRecords)),
	)
}

func loadJSON[T any](path string, log *logger.Logger) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("dataset file unreadable, continuing with empty dataset",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn("dataset file malformed, continuing with empty dataset",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return records
}

// HealthRecords returns the loaded health dataset. The slice is shared;
// callers must not mutate it.
func (s *Store) HealthRecords(_ context.Context) []health.HealthRecord {
	return s.healthRecords
}

// ScreenTimeRecords returns the loaded screen-time dataset. The slice is
// shared; callers must not mutate it.
func (s *Store) ScreenTimeRecords(_ context.Context) []health.ScreenTimeRecord {
	return s.screenRecords
}
