package testutil

import (
	"context"
	"pidash/internal/providers"
	"pidash/internal/series"
	"pidash/internal/widgets"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu              sync.Mutex
	Refreshes       map[string]int
	LastSuccess     map[string]time.Time
	CacheHits       int
	CacheMisses     int
	BlockingEnabled *bool
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Refreshes:   make(map[string]int),
		LastSuccess: make(map[string]time.Time),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncRefreshesTotal(widget string, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Refreshes[widget+":"+result]++
}

func (m *MockMetrics) ObserveRefreshDuration(_ string, _ time.Duration)  {}
func (m *MockMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) SetLastSuccess(widget string, ts time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastSuccess[widget] = ts
}

func (m *MockMetrics) SetBlockingEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BlockingEnabled = &enabled
}

// MockAdapter implements widgets.AdapterInterface with injectable results.
type MockAdapter struct {
	StatusData     widgets.StatusSummary
	StatusErr      error
	TopDomainsData widgets.TopDomains
	TopDomainsErr  error
	HistoryData    []series.Point
	HistoryErr     error

	StatusCalls     int
	TopDomainsCalls int
	HistoryCalls    int
}

func (m *MockAdapter) RefreshStatus(_ context.Context) (widgets.StatusSummary, error) {
	m.StatusCalls++
	return m.StatusData, m.StatusErr
}

func (m *MockAdapter) RefreshTopDomains(_ context.Context) (widgets.TopDomains, error) {
	m.TopDomainsCalls++
	if m.TopDomainsErr != nil {
		return widgets.TopDomains{Blocked: map[string]int64{}, Allowed: map[string]int64{}}, m.TopDomainsErr
	}
	return m.TopDomainsData, nil
}

func (m *MockAdapter) RefreshHistory(_ context.Context) ([]series.Point, error) {
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return []series.Point{}, m.HistoryErr
	}
	return m.HistoryData, nil
}
