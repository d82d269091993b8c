package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarFixture = `{
	"data": {
		"user": {
			"contributionsCollection": {
				"contributionCalendar": {
					"totalContributions": 12,
					"weeks": [
						{
							"contributionDays": [
								{"date": "2024-03-10", "contributionCount": 3},
								{"date": "2024-03-11", "contributionCount": 0}
							]
						},
						{
							"contributionDays": [
								{"date": "2024-03-12", "contributionCount": 9}
							]
						}
					]
				}
			}
		}
	}
}`

func fixedClock() func() time.Time {
	day, _ := time.Parse(time.DateOnly, "2024-03-15")
	return func() time.Time { return day }
}

func TestFetchContributionCalendar(t *testing.T) {
	var gotAuth string
	var gotReq graphQLRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(calendarFixture)) //nolint:errcheck // test fixture
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL), WithClock(fixedClock()))

	series, err := client.FetchContributionCalendar(context.Background(), "octocat", "gho_token")

	require.NoError(t, err)
	assert.Equal(t, "Bearer gho_token", gotAuth)
	assert.Equal(t, "octocat", gotReq.Variables["login"])

	// weeks flatten into one date -> count mapping, zero days included
	assert.Equal(t, map[string]int{
		"2024-03-10": 3,
		"2024-03-11": 0,
		"2024-03-12": 9,
	}, series)
}

func TestFetchContributionCalendar_GraphQLError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors": [{"message": "Could not resolve to a User"}]}`)) //nolint:errcheck
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))

	_, err := client.FetchContributionCalendar(context.Background(), "ghost", "gho_token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not resolve to a User")
}

func TestFetchContributionCalendar_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(WithBaseURL(ts.URL))

	_, err := client.FetchContributionCalendar(context.Background(), "octocat", "expired")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
