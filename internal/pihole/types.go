package pihole

// Session carries the opaque session token (sid) obtained from the
// appliance. A zero Session is the unauthenticated mode: no secret is
// configured, or the appliance reported that no password is set.
// Sessions live for a single refresh cycle and are never persisted.
type Session struct {
	Sid string
}

func (s Session) HasToken() bool {
	return s.Sid != ""
}

type authSession struct {
	Sid     *string `json:"sid"`
	Valid   bool    `json:"valid"`
	Message string  `json:"message"`
}

type authResponse struct {
	Session *authSession `json:"session"`
}

// Summary mirrors /api/stats/summary. Fields are pointers so that a
// missing field can be told apart from a legitimate zero.
type Summary struct {
	DomainsBeingBlocked *int64   `json:"domains_being_blocked"`
	DNSQueriesToday     *int64   `json:"dns_queries_today"`
	AdsBlockedToday     *int64   `json:"ads_blocked_today"`
	AdsPercentageToday  *float64 `json:"ads_percentage_today"`
}

// BlockingStatus mirrors /api/dns/blocking. A missing blocking field is
// deliberately lenient and treated as enabled by the caller.
type BlockingStatus struct {
	Blocking *bool `json:"blocking"`
}

// History mirrors /api/history. Absent arrays decode to nil, present but
// empty arrays to a non-nil empty slice.
type History struct {
	DomainsOverTime []int64 `json:"domains_over_time"`
	AdsOverTime     []int64 `json:"ads_over_time"`
}
