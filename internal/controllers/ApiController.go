package controllers

import (
	"net/http"
	"pidash/internal/providers"
	"pidash/internal/services"
	"pidash/internal/widgets"

	json "github.com/goccy/go-json"
)

// ApiController serves the normalized widget data objects. It is a pure
// consumer of finished refresh cycles: handlers read the current data slot
// and never see partial data. A `refresh=1` query forces a fresh pull
// cycle before serving, which is how a host frontend triggers an
// on-demand update.
type ApiController struct {
	logger  providers.Logger
	service services.WidgetServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.WidgetServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func forceRefresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "1"
}

func (ac *ApiController) serveWidget(w http.ResponseWriter, r *http.Request, cacheKey string, refresh func() error, data func() any) {
	if forceRefresh(r) {
		// a failed cycle already reset the slot to its empty form;
		// the rendering layer gets the placeholder, not an error page
		if err := refresh(); err != nil {
			ac.logger.Warnf(providers.TypeHttp, "forced refresh failed: %s", err)
		}
	} else if cached, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cached)
		return
	}

	gson, err := json.Marshal(data())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetStatus(w http.ResponseWriter, r *http.Request) {
	ac.serveWidget(w, r, "widget:"+widgets.KindStatus,
		func() error { return ac.service.RefreshStatus(r.Context()) },
		func() any { return ac.service.GetStatus() },
	)
}

func (ac *ApiController) GetTopDomains(w http.ResponseWriter, r *http.Request) {
	ac.serveWidget(w, r, "widget:"+widgets.KindTopDomains,
		func() error { return ac.service.RefreshTopDomains(r.Context()) },
		func() any { return ac.service.GetTopDomains() },
	)
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	ac.serveWidget(w, r, "widget:"+widgets.KindHistory,
		func() error { return ac.service.RefreshHistory(r.Context()) },
		func() any { return ac.service.GetHistory() },
	)
}
