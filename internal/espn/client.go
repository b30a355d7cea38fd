package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the ESPN fantasy football v3 read endpoint.
const DefaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

// DefaultTimeout bounds each request. The read API answers quickly; a stuck
// request should fail the run rather than hang it.
const DefaultTimeout = 15 * time.Second

// Auth carries the ESPN account cookies required for private leagues.
// Values come from the environment, never from flags, so they cannot leak
// into shell history.
type Auth struct {
	// ESPNS2 is the espn_s2 session cookie.
	ESPNS2 string

	// SWID is the account SWID cookie, braces included.
	SWID string
}

// APIError reports a non-200 response from the ESPN API.
type APIError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// LeagueID is the league the request targeted.
	LeagueID int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("espn api returned status %d for league %d", e.StatusCode, e.LeagueID)
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		msg += " (check ESPN_S2 and SWID credentials)"
	}
	return msg
}

// Client is an ESPN fantasy football API client for one season.
type Client struct {
	// httpClient performs the requests.
	httpClient *http.Client

	// baseURL is the API root, overridable for tests.
	baseURL string

	// auth holds the session cookies.
	auth Auth

	// season is the season year all requests target.
	season int

	// logger is used for request-level debug logging.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API root. Used by tests to point the client at
// a local httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets a custom logger for request debugging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the given season.
func NewClient(season int, auth Auth, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		auth:       auth,
		season:     season,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// get fetches the league resource with the given views, decoding the
// response into out.
func (c *Client) get(ctx context.Context, leagueID int, views []string, out any) error {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.season, leagueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request for league %d: %w", leagueID, err)
	}

	q := req.URL.Query()
	for _, view := range views {
		q.Add("view", view)
	}
	req.URL.RawQuery = q.Encode()

	if c.auth.SWID != "" || c.auth.ESPNS2 != "" {
		req.Header.Set("Cookie", fmt.Sprintf("SWID=%s; espn_s2=%s", c.auth.SWID, c.auth.ESPNS2))
	}

	c.logger.Debug("fetching espn resource",
		"league_id", leagueID,
		"views", strings.Join(views, ","),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching league %d: %w", leagueID, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close on a read-only body

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, LeagueID: leagueID}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response for league %d: %w", leagueID, err)
	}
	return nil
}
