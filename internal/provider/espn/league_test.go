package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbakke/fastbreak/internal/fantasy"
)

const (
	testLeagueID = 12345
	testSeason   = 2026
)

var (
	// jan10 and jan12 are fixed game dates in epoch milliseconds, jan12 later.
	jan10 = time.Date(2026, time.January, 10, 19, 0, 0, 0, time.UTC).UnixMilli()
	jan12 = time.Date(2026, time.January, 12, 19, 0, 0, 0, time.UTC).UnixMilli()
)

const leagueBody = `{
  "teams": [
    {
      "id": 1,
      "name": "Alpha",
      "record": {"overall": {"wins": 10, "losses": 4}},
      "roster": {"entries": [
        {"playerPoolEntry": {"id": 101, "player": {
          "id": 101,
          "fullName": "Test Forward",
          "defaultPositionId": 4,
          "proTeamId": 13,
          "injuryStatus": "ACTIVE",
          "stats": [
            {"seasonId": 2026, "statSourceId": 0, "statSplitTypeId": 0,
             "stats": {"0": 820, "6": 328, "99": 7},
             "averageStats": {"0": 20, "6": 8},
             "appliedTotal": 1476.0, "appliedAverage": 36.0},
            {"seasonId": 2026, "statSourceId": 1, "statSplitTypeId": 0,
             "stats": {"0": 1640},
             "averageStats": {"0": 20},
             "appliedTotal": 3280.0, "appliedAverage": 40.0},
            {"seasonId": 2026, "statSourceId": 0, "statSplitTypeId": 1,
             "stats": {"0": 999}},
            {"seasonId": 2025, "statSourceId": 0, "statSplitTypeId": 0,
             "stats": {"0": 555}}
          ]
        }}}
      ]}
    }
  ]
}`

func ms(v int64) string { return strconv.FormatInt(v, 10) }

// schedulesBody lists the later game first to prove the client sorts.
func schedulesBody() string {
	return `{
	  "settings": {"proTeams": [
	    {"id": 13, "abbrev": "LAL", "proGamesByScoringPeriod": {
	      "40": [{"id": 1, "date": ` + ms(jan12) + `}],
	      "39": [{"id": 2, "date": ` + ms(jan10) + `}]
	    }}
	  ]}
	}`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(testLeagueID, testSeason, "", "", 600, 5*time.Second, nil)
	c.SetBaseURL(srv.URL)
	return c
}

func leagueHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/leagues/"):
			w.Write([]byte(leagueBody))
		case strings.HasSuffix(r.URL.Path, "/seasons/2026"):
			w.Write([]byte(schedulesBody()))
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestFetchLeagueNormalizesPlayers(t *testing.T) {
	c := newTestClient(t, leagueHandler(t))

	teams, err := c.FetchLeague(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)

	team := teams[0]
	assert.Equal(t, 1, team.ID)
	assert.Equal(t, "Alpha", team.Name)
	assert.Equal(t, 10, team.Wins)
	assert.Equal(t, 4, team.Losses)
	require.Len(t, team.Roster, 1)

	p := team.Roster[0]
	assert.Equal(t, "Test Forward", p.Name)
	assert.Equal(t, "PF", p.Position)
	assert.Equal(t, "LAL", p.ProTeam)
	assert.Equal(t, "ACTIVE", p.InjuryStatus)

	// Actual season entry lands in total/avg; unmapped stat id 99 is dropped.
	total := p.Bucket(fantasy.BucketTotal)
	assert.Equal(t, 820.0, total.Get(fantasy.CatPoints))
	assert.Equal(t, 328.0, total.Get(fantasy.CatRebounds))
	assert.Equal(t, 1476.0, total.Get(fantasy.CatFPTS))
	_, hasUnmapped := total.Lookup("99")
	assert.False(t, hasUnmapped)

	avg := p.Bucket(fantasy.BucketAverage)
	assert.Equal(t, 20.0, avg.Get(fantasy.CatPoints))
	assert.Equal(t, 36.0, avg.Get(fantasy.CatFPTS))

	// Projected entry with a season tag lands in the season-keyed buckets.
	projTotal := p.Bucket(fantasy.ProjectionKey(testSeason, false))
	require.NotNil(t, projTotal)
	assert.Equal(t, 1640.0, projTotal.Get(fantasy.CatPoints))
	assert.Equal(t, 3280.0, projTotal.Get(fantasy.CatFPTS))

	projAvg := p.Bucket(fantasy.ProjectionKey(testSeason, true))
	require.NotNil(t, projAvg)
	assert.Equal(t, 40.0, projAvg.Get(fantasy.CatFPTS))

	// Non-season splits and prior seasons never leak into the season buckets.
	assert.NotEqual(t, 999.0, total.Get(fantasy.CatPoints))
	assert.NotEqual(t, 555.0, total.Get(fantasy.CatPoints))
}

func TestFetchLeagueAttachesSchedules(t *testing.T) {
	c := newTestClient(t, leagueHandler(t))

	teams, err := c.FetchLeague(context.Background())
	require.NoError(t, err)

	schedule := teams[0].Roster[0].Schedule
	require.Len(t, schedule, 2)
	// Sorted chronologically regardless of scoring-period key order.
	assert.True(t, schedule[0].Date.Before(schedule[1].Date))
	assert.Equal(t, time.UnixMilli(jan12), schedule[1].Date)
}

func TestFetchLeagueUnauthorizedHint(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.FetchLeague(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Hint, "ESPN_S2")
}

func TestFetchLeagueSendsAuthCookies(t *testing.T) {
	var gotS2, gotSWID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("espn_s2"); err == nil {
			gotS2 = c.Value
		}
		if c, err := r.Cookie("SWID"); err == nil {
			gotSWID = c.Value
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testLeagueID, testSeason, "secret-s2", "{ABC}", 600, 5*time.Second, nil)
	c.SetBaseURL(srv.URL)

	_, err := c.FetchLeague(context.Background())
	require.Error(t, err)
	assert.Equal(t, "secret-s2", gotS2)
	assert.Equal(t, "{ABC}", gotSWID)
}

func activityHandler(t *testing.T, commBody string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/communication/"):
			w.Write([]byte(commBody))
		case strings.Contains(r.URL.Path, "/leagues/"):
			w.Write([]byte(leagueBody))
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestFetchRecentActivity(t *testing.T) {
	older := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC).UnixMilli()
	newer := time.Date(2026, time.January, 11, 8, 0, 0, 0, time.UTC).UnixMilli()

	commBody := `{
	  "topics": [
	    {"date": ` + ms(older) + `, "messages": [
	      {"messageTypeId": 180, "from": 0, "to": 1, "targetId": 101},
	      {"messageTypeId": 65, "from": 1, "to": 2, "targetId": 101}
	    ]},
	    {"date": ` + ms(newer) + `, "messages": [
	      {"messageTypeId": 239, "from": 1, "to": 0, "targetId": 777}
	    ]}
	  ]
	}`

	c := newTestClient(t, activityHandler(t, commBody))

	txns, err := c.FetchRecentActivity(context.Background(), 10)
	require.NoError(t, err)

	// Unknown message type 65 is dropped; the rest sort newest first.
	require.Len(t, txns, 2)
	assert.Equal(t, "DROPPED", txns[0].Action)
	assert.Equal(t, "Alpha", txns[0].Team, "drops resolve the releasing team")
	assert.Equal(t, "Player 777", txns[0].Player, "off-roster ids fall back to the raw id")

	assert.Equal(t, "WAIVER ADDED", txns[1].Action)
	assert.Equal(t, "Alpha", txns[1].Team, "adds resolve the receiving team")
	assert.Equal(t, "Test Forward", txns[1].Player)
}

func TestFetchRecentActivityTruncatesToSize(t *testing.T) {
	base := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	commBody := `{"topics": [
	  {"date": ` + ms(base.UnixMilli()) + `, "messages": [{"messageTypeId": 178, "from": 0, "to": 1, "targetId": 101}]},
	  {"date": ` + ms(base.Add(time.Hour).UnixMilli()) + `, "messages": [{"messageTypeId": 239, "from": 1, "to": 0, "targetId": 101}]},
	  {"date": ` + ms(base.Add(2*time.Hour).UnixMilli()) + `, "messages": [{"messageTypeId": 178, "from": 0, "to": 1, "targetId": 101}]}
	]}`

	c := newTestClient(t, activityHandler(t, commBody))

	txns, err := c.FetchRecentActivity(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.True(t, txns[0].Date.After(txns[1].Date))
}

func TestCircuitBreakerOpensAfterRepeatedFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx := context.Background()

	var apiErr *APIError
	tripped := false
	for i := 0; i < 10; i++ {
		_, err := c.get(ctx, c.leagueURL())
		require.Error(t, err)
		if errors.As(err, &apiErr) && strings.Contains(apiErr.Hint, "circuit breaker") {
			tripped = true
			break
		}
	}
	assert.True(t, tripped, "breaker should open after repeated upstream failures")
}
