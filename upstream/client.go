package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "geoproxy/1.0"

// HTTPError is returned when an upstream answers with a non 2xx status. The
// status is kept for logging; the router still responds with 500.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client performs the GET requests of all fetchers.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a Client with no timeout of its own. Requests are bounded
// by the invocation context, which carries the lambda deadline.
func NewClient(userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{HTTP: &http.Client{}, UserAgent: userAgent}
}

// Get sends a GET to base with query appended and reads the whole body.
func (c *Client) Get(ctx context.Context, base string, query url.Values) (*Response, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upstream url '%s'", base)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed creating upstream request")
	}
	req.Header.Set("User-Agent", c.UserAgent)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	resp, err := hc.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = u.Scheme + "://" + u.Host + u.Path
		}

		return nil, errors.Wrapf(err, "GET %s failed", u.Host+u.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading response of %s", u.Host+u.Path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{URL: u.Host + u.Path, StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// GetJSON sends a GET and returns the json body compacted into a string.
func (c *Client) GetJSON(ctx context.Context, base string, query url.Values) (string, error) {
	resp, err := c.Get(ctx, base, query)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := json.Compact(buf, resp.Body); err != nil {
		return "", errors.Wrap(err, "upstream returned invalid json")
	}

	return buf.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
