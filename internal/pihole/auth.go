package pihole

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

const msgNoPasswordSet = "no password set"

// Authenticate exchanges the configured secret for a short-lived session.
// With no secret configured it returns an unauthenticated session without
// touching the network. One call per refresh cycle; sessions are never
// reused across cycles.
func (c *Client) Authenticate(ctx context.Context) (Session, error) {
	if c.apiKey == "" {
		return Session{}, nil
	}

	var body struct {
		Password string `json:"password"`
	}
	body.Password = c.apiKey
	bs, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+urlPathAPIAuth, bytes.NewReader(bs))
	if err != nil {
		return Session{}, &AuthError{Reason: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveUpstreamDuration(urlPathAPIAuth, time.Since(start))
	if err != nil {
		return Session{}, &AuthError{Reason: "executing request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Session{}, &AuthError{Reason: fmt.Sprintf("unexpected status code: %d", resp.StatusCode)}
	}

	var v authResponse
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return Session{}, &AuthError{Reason: "decoding response", Err: err}
	}

	sess := v.Session
	if sess == nil {
		return Session{}, &AuthError{Reason: "no session token"}
	}

	if sess.Sid == nil {
		// A password-less appliance still answers with a structured
		// session: a null sid marked valid. Not an error.
		if sess.Valid && sess.Message == msgNoPasswordSet {
			return Session{}, nil
		}
		return Session{}, &AuthError{Reason: "no session token"}
	}

	return Session{Sid: *sess.Sid}, nil
}
