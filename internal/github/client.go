package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultGraphQLURL = "https://api.github.com/graphql"

	// one year of calendar data, matching what GitHub renders on profiles
	calendarLookback = 365 * 24 * time.Hour
)

const calendarQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

// shared HTTP client for GitHub API calls
var githubHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for GitHub GraphQL calls (well under the 5000 points/hour quota)
var githubRateLimiter = rate.NewLimiter(10, 5)

// fetches contribution calendars from the GitHub GraphQL API
type Client struct {
	url        string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Client)

// overrides the GraphQL endpoint, used by tests
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// overrides the clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		url:        defaultGraphQLURL,
		httpClient: githubHTTPClient,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// fetches the user's contribution calendar for the trailing year and
// flattens it into a date -> count mapping. Dates use YYYY-MM-DD.
// The token is the OAuth access token obtained during login.
func (c *Client) FetchContributionCalendar(ctx context.Context, login, token string) (map[string]int, error) {
	to := c.now().UTC()
	from := to.Add(-calendarLookback)

	reqBody := graphQLRequest{
		Query: calendarQuery,
		Variables: map[string]any{
			"login": login,
			"from":  from.Format(time.RFC3339),
			"to":    to.Format(time.RFC3339),
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	// rate limiting
	if err := githubRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("github API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var calResp calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&calResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(calResp.Errors) > 0 {
		return nil, fmt.Errorf("github API error: %s", calResp.Errors[0].Message)
	}

	contributions := make(map[string]int)

	for _, week := range calResp.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			contributions[day.Date] = day.ContributionCount
		}
	}

	return contributions, nil
}
