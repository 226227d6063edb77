package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/internal/options"
)

// DefaultBaseURL is the production VOST API endpoint.
const DefaultBaseURL = "https://covid19-api.vost.pt"

// requestDateFormat is the dd-mm-yyyy format the API expects in URLs and
// reports in payload dates.
const requestDateFormat = "02-01-2006"

// Client fetches county case-count records for a date range.
//
// A Client is safe for concurrent use; it holds no mutable state beyond the
// shared rate limiter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	limiter    *rate.Limiter
}

// Option is a functional option for NewClient.
type Option = options.Option[*Client]

// WithBaseURL overrides the API endpoint, typically to point at a test
// server.
func WithBaseURL(baseURL string) Option {
	return options.NoError(func(c *Client) {
		c.baseURL = baseURL
	})
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return options.NoError(func(c *Client) {
		c.httpClient = httpClient
	})
}

// WithCredentials sets the HTTP Basic authentication pair the API requires.
func WithCredentials(username, password string) Option {
	return options.NoError(func(c *Client) {
		c.username = username
		c.password = password
	})
}

// WithRateLimit caps outgoing requests per second. The API is a shared
// civic resource; the default of 1 req/s is deliberately conservative.
func WithRateLimit(perSecond float64) Option {
	return options.New(func(c *Client) error {
		if perSecond <= 0 {
			return fmt.Errorf("%w: rate must be positive, got %g", errs.ErrInvalidParameter, perSecond)
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)

		return nil
	})
}

// NewClient creates a Client with defaults suitable for the production API.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// FetchRange retrieves every county record reported in [start, end].
//
// Returns errs.ErrInvalidRange when start is after end and
// errs.ErrSourceUnavailable for transport failures, non-2xx responses and
// undecodable payloads.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) ([]dataset.RawRecord, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s after end %s",
			errs.ErrInvalidRange, start.Format(requestDateFormat), end.Format(requestDateFormat))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/Requests/get_entry_counties/%s_until_%s",
		c.baseURL, start.Format(requestDateFormat), end.Format(requestDateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSourceUnavailable, err)
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", errs.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSourceUnavailable, err)
	}

	return decodeRecords(body)
}
