package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/sirupsen/logrus"
)

const (
	// BaseURL is NBA.com's data host.
	BaseURL = "https://data.nba.net"

	// The API refuses requests without a browser User-Agent.
	userAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:45.0) Gecko/20100101 Firefox/45.0"

	defaultTimeout = 15 * time.Second
)

// Client fetches JSON documents from the stats API. Round trips go through
// the caching transport supplied at construction, so repeated fetches of
// slow-moving endpoints are answered locally.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a stats API client. A nil httpClient falls back to a
// plain uncached client with the default timeout.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// URL builds an absolute API URL from a path.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// GetJSON fetches url and decodes the body into a map. The second return
// reports whether the response was served by the local HTTP cache instead
// of the network; callers use it to skip re-parsing documents they already
// hold decoded in memory.
func (c *Client) GetJSON(ctx context.Context, url string) (map[string]interface{}, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, &NetworkError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	fromCache := resp.Header.Get(httpcache.XFromCache) == "1"
	if !fromCache {
		c.logger.WithFields(logrus.Fields{
			"url":    url,
			"status": resp.StatusCode,
		}).Debug("fetched from network")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fromCache, &NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	// Read to EOF so the caching transport sees the whole body and can
	// store it; a json.Decoder would stop at the closing brace.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fromCache, &NetworkError{URL: url, Err: fmt.Errorf("reading response: %w", err)}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fromCache, &ParseError{URL: url, Err: err}
	}

	return result, fromCache, nil
}
