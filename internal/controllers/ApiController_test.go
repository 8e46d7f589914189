package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"pidash/internal/series"
	"pidash/internal/testutil"
	"pidash/internal/widgets"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService gives the handler tests direct control over refresh
// outcomes without going through an adapter.
type stubService struct {
	status      widgets.StatusSummary
	topDomains  widgets.TopDomains
	history     []series.Point
	refreshErr  error
	refreshed   int
	lastRefresh time.Time
}

func (s *stubService) RefreshStatus(_ context.Context) error {
	s.refreshed++
	return s.refreshErr
}
func (s *stubService) RefreshTopDomains(_ context.Context) error {
	s.refreshed++
	return s.refreshErr
}
func (s *stubService) RefreshHistory(_ context.Context) error {
	s.refreshed++
	return s.refreshErr
}
func (s *stubService) RefreshAll(_ context.Context) error { return s.refreshErr }
func (s *stubService) GetStatus() widgets.StatusSummary   { return s.status }
func (s *stubService) GetTopDomains() widgets.TopDomains  { return s.topDomains }
func (s *stubService) GetHistory() []series.Point         { return s.history }
func (s *stubService) BlockingEnabled() bool              { return s.status.Status == "enabled" }
func (s *stubService) LastRefresh() time.Time             { return s.lastRefresh }

func newTestController(service *stubService, cache *testutil.MockCache) (*ApiController, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	return NewApiController(logger, service, cache), logger
}

func TestGetStatus_ServesCurrentSlot(t *testing.T) {
	service := &stubService{
		status: widgets.StatusSummary{
			TotalQueriesToday:  5000,
			AdsBlockedToday:    1250,
			AdsPercentageToday: "25.0",
			DomainsOnBlocklist: 120000,
			Status:             "enabled",
		},
	}
	controller, _ := newTestController(service, testutil.NewMockCache())

	rec := httptest.NewRecorder()
	controller.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/widgets/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"total_queries_today": 5000,
		"ads_blocked_today": 1250,
		"ads_percentage_today": "25.0",
		"domains_on_blocklist": 120000,
		"status": "enabled"
	}`, rec.Body.String())
	assert.Zero(t, service.refreshed)
}

func TestGetStatus_CacheHitSkipsMarshal(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set("widget:status", []byte(`{"cached":true}`))
	controller, _ := newTestController(&stubService{}, cache)

	rec := httptest.NewRecorder()
	controller.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/widgets/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"cached":true}`, rec.Body.String())
}

func TestGetStatus_PopulatesCache(t *testing.T) {
	cache := testutil.NewMockCache()
	controller, _ := newTestController(&stubService{status: widgets.StatusSummary{Status: "enabled"}}, cache)

	rec := httptest.NewRecorder()
	controller.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/widgets/status", nil))

	cached, ok := cache.Get("widget:status")
	require.True(t, ok)
	assert.Equal(t, rec.Body.String(), string(cached))
}

func TestGetStatus_ForcedRefreshBypassesCache(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Set("widget:status", []byte(`{"stale":true}`))
	service := &stubService{status: widgets.StatusSummary{Status: "disabled"}}
	controller, _ := newTestController(service, cache)

	rec := httptest.NewRecorder()
	controller.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/widgets/status?refresh=1", nil))

	assert.Equal(t, 1, service.refreshed)
	assert.NotContains(t, rec.Body.String(), "stale")
}

func TestGetStatus_ForcedRefreshFailureServesPlaceholder(t *testing.T) {
	service := &stubService{refreshErr: errors.New("upstream down")}
	controller, logger := newTestController(service, testutil.NewMockCache())

	rec := httptest.NewRecorder()
	controller.GetStatus(rec, httptest.NewRequest(http.MethodGet, "/widgets/status?refresh=1", nil))

	// failure still yields a 200 with the empty form of the widget
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_queries_today": 0,
		"ads_blocked_today": 0,
		"ads_percentage_today": "",
		"domains_on_blocklist": 0,
		"status": ""
	}`, rec.Body.String())
	require.Len(t, logger.Logs, 1)
	assert.Equal(t, "warn", logger.Logs[0].Level)
}

func TestGetTopDomains_ServesBothRankings(t *testing.T) {
	service := &stubService{
		topDomains: widgets.TopDomains{
			Blocked: map[string]int64{"ads.example.com": 5},
			Allowed: map[string]int64{"good.example.com": 9},
		},
	}
	controller, _ := newTestController(service, testutil.NewMockCache())

	rec := httptest.NewRecorder()
	controller.GetTopDomains(rec, httptest.NewRequest(http.MethodGet, "/widgets/top-domains", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"blocked": {"ads.example.com": 5},
		"allowed": {"good.example.com": 9}
	}`, rec.Body.String())
}

func TestGetHistory_ServesPointList(t *testing.T) {
	service := &stubService{
		history: []series.Point{
			{Label: "12:00 AM", Total: 10, Blocked: 1},
			{Label: "12:10 AM", Total: 20, Blocked: 2},
		},
	}
	controller, _ := newTestController(service, testutil.NewMockCache())

	rec := httptest.NewRecorder()
	controller.GetHistory(rec, httptest.NewRequest(http.MethodGet, "/widgets/history", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"label": "12:00 AM", "total": 10, "blocked": 1},
		{"label": "12:10 AM", "total": 20, "blocked": 2}
	]`, rec.Body.String())
}

func TestGetHistory_EmptySlotServesEmptyArray(t *testing.T) {
	controller, _ := newTestController(&stubService{history: []series.Point{}}, testutil.NewMockCache())

	rec := httptest.NewRecorder()
	controller.GetHistory(rec, httptest.NewRequest(http.MethodGet, "/widgets/history", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestForceRefresh_QueryForms(t *testing.T) {
	assert.True(t, forceRefresh(httptest.NewRequest(http.MethodGet, "/widgets/status?refresh=1", nil)))
	assert.False(t, forceRefresh(httptest.NewRequest(http.MethodGet, "/widgets/status", nil)))
	assert.False(t, forceRefresh(httptest.NewRequest(http.MethodGet, "/widgets/status?refresh=0", nil)))
	assert.False(t, forceRefresh(httptest.NewRequest(http.MethodGet, "/widgets/status?refresh=true", nil)))
}
