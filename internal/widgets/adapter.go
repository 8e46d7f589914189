package widgets

import (
	"context"
	"pidash/internal/pihole"
	"pidash/internal/providers"
	"pidash/internal/series"
	"strconv"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

type AdapterInterface interface {
	RefreshStatus(ctx context.Context) (StatusSummary, error)
	RefreshTopDomains(ctx context.Context) (TopDomains, error)
	RefreshHistory(ctx context.Context) ([]series.Point, error)
}

// Adapter orchestrates one refresh cycle per widget kind: authenticate,
// fetch, validate, normalize. Authentication always completes (or is
// skipped) before any stat fetch; the session is shared within a cycle and
// dropped afterwards.
type Adapter struct {
	client *pihole.Client
	logger providers.Logger
	now    func() time.Time
}

func NewAdapter(client *pihole.Client, logger providers.Logger) AdapterInterface {
	return &Adapter{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// RefreshStatus runs the status/summary cycle. The summary check is
// strict: every numeric field must be defined, zero included. The blocking
// check is lenient: a missing flag means enabled.
func (a *Adapter) RefreshStatus(ctx context.Context) (StatusSummary, error) {
	sess, err := a.client.Authenticate(ctx)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "status widget: %s", err)
		return StatusSummary{}, err
	}

	sum, err := a.client.Summary(ctx, sess)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "status widget: %s", err)
		return StatusSummary{}, err
	}
	if err := validateSummary(sum); err != nil {
		a.logger.Errorf(providers.TypePoll, "status widget: %s", err)
		return StatusSummary{}, err
	}

	bl, err := a.client.Blocking(ctx, sess)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "status widget: %s", err)
		return StatusSummary{}, err
	}

	blocking := true
	if bl.Blocking != nil {
		blocking = *bl.Blocking
	}
	status := "enabled"
	if !blocking {
		status = "disabled"
	}

	return StatusSummary{
		TotalQueriesToday:  *sum.DNSQueriesToday,
		AdsBlockedToday:    *sum.AdsBlockedToday,
		AdsPercentageToday: strconv.FormatFloat(*sum.AdsPercentageToday, 'f', 1, 64),
		DomainsOnBlocklist: *sum.DomainsBeingBlocked,
		Status:             status,
	}, nil
}

// RefreshTopDomains fetches the blocked and allowed rankings concurrently
// with one shared session. The two fetches have no required relative
// order; they share only the read-only session token.
func (a *Adapter) RefreshTopDomains(ctx context.Context) (TopDomains, error) {
	sess, err := a.client.Authenticate(ctx)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "top domains widget: %s", err)
		return emptyTopDomains(), err
	}

	var (
		wg   sync.WaitGroup
		raws [2]json.RawMessage
		errs [2]error
	)

	for i, blocked := range []bool{true, false} {
		wg.Add(1)
		go func(i int, blocked bool) {
			defer wg.Done()
			raws[i], errs[i] = a.client.TopDomains(ctx, sess, blocked)
		}(i, blocked)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			a.logger.Errorf(providers.TypePoll, "top domains widget: %s", err)
			return emptyTopDomains(), err
		}
	}

	return TopDomains{
		Blocked: domainRanking(raws[0]),
		Allowed: domainRanking(raws[1]),
	}, nil
}

// RefreshHistory fetches the raw sample arrays and reconstructs the
// 10-minute traffic series.
func (a *Adapter) RefreshHistory(ctx context.Context) ([]series.Point, error) {
	sess, err := a.client.Authenticate(ctx)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "history widget: %s", err)
		return []series.Point{}, err
	}

	hist, err := a.client.History(ctx, sess)
	if err != nil {
		a.logger.Errorf(providers.TypePoll, "history widget: %s", err)
		return []series.Point{}, err
	}
	if err := validateHistory(hist); err != nil {
		a.logger.Errorf(providers.TypePoll, "history widget: %s", err)
		return []series.Point{}, err
	}

	return series.Reconstruct(hist.DomainsOverTime, hist.AdsOverTime, a.now()), nil
}

func validateSummary(sum *pihole.Summary) error {
	// explicit is-defined checks: zero is a valid value
	switch {
	case sum.DNSQueriesToday == nil:
		return &pihole.ValidationError{Path: "/api/stats/summary", Reason: "missing dns_queries_today"}
	case sum.AdsBlockedToday == nil:
		return &pihole.ValidationError{Path: "/api/stats/summary", Reason: "missing ads_blocked_today"}
	case sum.AdsPercentageToday == nil:
		return &pihole.ValidationError{Path: "/api/stats/summary", Reason: "missing ads_percentage_today"}
	case sum.DomainsBeingBlocked == nil:
		return &pihole.ValidationError{Path: "/api/stats/summary", Reason: "missing domains_being_blocked"}
	}
	return nil
}

func validateHistory(hist *pihole.History) error {
	if hist.DomainsOverTime == nil {
		return &pihole.ValidationError{Path: "/api/history", Reason: "missing domains_over_time"}
	}
	if hist.AdsOverTime == nil {
		return &pihole.ValidationError{Path: "/api/history", Reason: "missing ads_over_time"}
	}
	return nil
}

// domainRanking decodes a ranking payload. Anything that is not a JSON
// object of domain to count becomes an empty mapping, not an error. This
// lenient fallback intentionally differs from the strict summary check.
func domainRanking(raw json.RawMessage) map[string]int64 {
	var m map[string]int64
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]int64{}
	}
	return m
}
