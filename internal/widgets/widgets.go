// Package widgets turns raw appliance responses into the normalized data
// objects the rendering layer consumes. Each widget kind runs its own
// refresh cycle and owns its own copy of the result; a failed cycle always
// yields the empty placeholder, never partial data.
package widgets

// Widget kind names, used as cache keys and metric labels.
const (
	KindStatus     = "status"
	KindTopDomains = "top_domains"
	KindHistory    = "history"
)

// StatusSummary is the combined status/summary widget payload. Status is
// derived from the blocking flag; the percentage is pre-formatted to one
// fractional digit.
type StatusSummary struct {
	TotalQueriesToday  int64  `json:"total_queries_today"`
	AdsBlockedToday    int64  `json:"ads_blocked_today"`
	AdsPercentageToday string `json:"ads_percentage_today"`
	DomainsOnBlocklist int64  `json:"domains_on_blocklist"`
	Status             string `json:"status"`
}

// TopDomains holds the blocked and allowed rankings independently. The
// maps are never nil: a failed or malformed fetch leaves an empty mapping.
type TopDomains struct {
	Blocked map[string]int64 `json:"blocked"`
	Allowed map[string]int64 `json:"allowed"`
}

func emptyTopDomains() TopDomains {
	return TopDomains{
		Blocked: map[string]int64{},
		Allowed: map[string]int64{},
	}
}
