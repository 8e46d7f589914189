package services

import (
	"context"
	"errors"
	"pidash/internal/providers"
	"pidash/internal/series"
	"pidash/internal/widgets"
	"sync"
	"time"
)

type WidgetServiceInterface interface {
	RefreshStatus(ctx context.Context) error
	RefreshTopDomains(ctx context.Context) error
	RefreshHistory(ctx context.Context) error
	RefreshAll(ctx context.Context) error
	GetStatus() widgets.StatusSummary
	GetTopDomains() widgets.TopDomains
	GetHistory() []series.Point
	BlockingEnabled() bool
	LastRefresh() time.Time
}

// WidgetService owns one data slot per widget kind. A refresh replaces the
// slot wholesale: on success with the complete result, on failure with the
// empty placeholder before the error is passed up. Slots are never merged
// and never shared between widget kinds.
type WidgetService struct {
	adapter widgets.AdapterInterface
	metrics providers.MetricsProviderInterface

	mu          sync.RWMutex
	status      widgets.StatusSummary
	topDomains  widgets.TopDomains
	history     []series.Point
	lastRefresh time.Time
}

func NewWidgetService(adapter widgets.AdapterInterface, metrics providers.MetricsProviderInterface) WidgetServiceInterface {
	return &WidgetService{
		adapter: adapter,
		metrics: metrics,
		topDomains: widgets.TopDomains{
			Blocked: map[string]int64{},
			Allowed: map[string]int64{},
		},
		history: []series.Point{},
	}
}

func (ws *WidgetService) RefreshStatus(ctx context.Context) error {
	start := time.Now()
	data, err := ws.adapter.RefreshStatus(ctx)

	ws.mu.Lock()
	ws.status = data
	ws.mu.Unlock()

	ws.observe(widgets.KindStatus, start, err)
	if err == nil {
		ws.metrics.SetBlockingEnabled(data.Status == "enabled")
	}
	return err
}

func (ws *WidgetService) RefreshTopDomains(ctx context.Context) error {
	start := time.Now()
	data, err := ws.adapter.RefreshTopDomains(ctx)

	ws.mu.Lock()
	ws.topDomains = data
	ws.mu.Unlock()

	ws.observe(widgets.KindTopDomains, start, err)
	return err
}

func (ws *WidgetService) RefreshHistory(ctx context.Context) error {
	start := time.Now()
	data, err := ws.adapter.RefreshHistory(ctx)

	ws.mu.Lock()
	ws.history = data
	ws.mu.Unlock()

	ws.observe(widgets.KindHistory, start, err)
	return err
}

// RefreshAll runs all three widget cycles. A failed cycle does not stop
// the remaining ones; errors are joined for the caller.
func (ws *WidgetService) RefreshAll(ctx context.Context) error {
	return errors.Join(
		ws.RefreshStatus(ctx),
		ws.RefreshTopDomains(ctx),
		ws.RefreshHistory(ctx),
	)
}

func (ws *WidgetService) observe(widget string, start time.Time, err error) {
	ws.metrics.ObserveRefreshDuration(widget, time.Since(start))
	if err != nil {
		ws.metrics.IncRefreshesTotal(widget, "error")
		return
	}
	ws.metrics.IncRefreshesTotal(widget, "success")
	ws.metrics.SetLastSuccess(widget, time.Now())

	ws.mu.Lock()
	ws.lastRefresh = time.Now()
	ws.mu.Unlock()
}

func (ws *WidgetService) GetStatus() widgets.StatusSummary {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.status
}

func (ws *WidgetService) GetTopDomains() widgets.TopDomains {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.topDomains
}

func (ws *WidgetService) GetHistory() []series.Point {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.history
}

func (ws *WidgetService) BlockingEnabled() bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.status.Status == "enabled"
}

func (ws *WidgetService) LastRefresh() time.Time {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.lastRefresh
}
