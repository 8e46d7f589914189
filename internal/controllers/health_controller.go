package controllers

import (
	"fmt"
	"net/http"
	"pidash/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	service   services.WidgetServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Blocking      string  `json:"blocking"`
	LastRefresh   string  `json:"last_refresh"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	blocking := "disabled"
	if hc.service.BlockingEnabled() {
		blocking = "enabled"
	}

	lastRefresh := ""
	if t := hc.service.LastRefresh(); !t.IsZero() {
		lastRefresh = t.Format(time.RFC3339)
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Blocking:      blocking,
		LastRefresh:   lastRefresh,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.WidgetServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		startTime: time.Now(),
	}
}
