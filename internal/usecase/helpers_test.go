package usecase

import (
	"sync"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string][]string
	degraded map[string]int
	stale    map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		outcomes: map[string][]string{},
		degraded: map[string]int{},
		stale:    map[string]int{},
	}
}

func (m *fakeMetrics) ObserveComputation(view, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[view] = append(m.outcomes[view], outcome)
}

func (m *fakeMetrics) IncDegradedFetch(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.degraded[scope]++
}

func (m *fakeMetrics) IncStalePass(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stale[view]++
}

func (m *fakeMetrics) degradedCount(scope string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.degraded[scope]
}

func (m *fakeMetrics) staleCount(view string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stale[view]
}

func testOptions(metrics MetricsRecorder) ComputeOptions {
	logger := logging.NewNop()
	return ComputeOptions{
		Workers: 4,
		TopN:    5,
		Passes:  NewPassRunner(resilience.NewPassTracker(), nil, metrics, logger),
		Logger:  logger,
	}
}
