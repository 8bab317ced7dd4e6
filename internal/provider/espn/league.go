package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mbakke/fastbreak/internal/fantasy"
)

// FetchLeague pulls the current league snapshot: every team with its roster,
// each player carrying the four stat buckets and the pro-team schedule.
// Returns an error rather than partial data when any upstream call fails.
func (c *Client) FetchLeague(ctx context.Context) ([]fantasy.Team, error) {
	raw, err := c.fetchLeagueRaw(ctx)
	if err != nil {
		return nil, err
	}

	schedules, err := c.fetchProSchedules(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]fantasy.Team, 0, len(raw.Teams))
	for _, t := range raw.Teams {
		team := fantasy.Team{
			ID:     t.ID,
			Name:   t.Name,
			Wins:   t.Record.Overall.Wins,
			Losses: t.Record.Overall.Losses,
			Roster: make([]fantasy.Player, 0, len(t.Roster.Entries)),
		}
		for _, entry := range t.Roster.Entries {
			team.Roster = append(team.Roster, c.normalizePlayer(entry.PlayerPoolEntry.Player, schedules))
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (c *Client) fetchLeagueRaw(ctx context.Context) (*leagueResponse, error) {
	url := c.leagueURL() + "?view=mTeam&view=mRoster&view=mSettings"
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch league: %w", err)
	}

	var raw leagueResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode league: %w", err)
	}
	return &raw, nil
}

// fetchProSchedules returns the pro-team game schedule keyed by proTeamId.
func (c *Client) fetchProSchedules(ctx context.Context) (map[int][]fantasy.Game, error) {
	url := fmt.Sprintf("%s/seasons/%d?view=proTeamSchedules_wl", c.baseURL, c.season)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch pro schedules: %w", err)
	}

	var raw seasonResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode pro schedules: %w", err)
	}

	schedules := make(map[int][]fantasy.Game, len(raw.Settings.ProTeams))
	for _, team := range raw.Settings.ProTeams {
		var games []fantasy.Game
		for _, period := range team.ProGamesByScoringPeriod {
			for _, g := range period {
				games = append(games, fantasy.Game{Date: time.UnixMilli(g.Date)})
			}
		}
		sort.Slice(games, func(i, j int) bool { return games[i].Date.Before(games[j].Date) })
		schedules[team.ID] = games
	}
	return schedules, nil
}

// normalizePlayer splits a player's season stat entries into the named
// buckets. Actual entries for the client's season become "total"/"avg";
// projected entries become season-keyed buckets, or the legacy flat buckets
// when the source omits the season tag.
func (c *Client) normalizePlayer(raw playerRaw, schedules map[int][]fantasy.Game) fantasy.Player {
	stats := make(map[string]fantasy.StatBucket)

	for _, entry := range raw.Stats {
		if entry.StatSplitTypeID != 0 {
			continue // season splits only
		}

		total := mapBucket(entry.Stats, entry.AppliedTotal)
		average := mapBucket(entry.AverageStats, entry.AppliedAverage)

		switch entry.StatSourceID {
		case 0:
			if entry.SeasonID != c.season {
				continue
			}
			setBucket(stats, fantasy.BucketTotal, total)
			setBucket(stats, fantasy.BucketAverage, average)
		case 1:
			totalKey := fantasy.BucketProjTotal
			avgKey := fantasy.BucketProjAverage
			if entry.SeasonID != 0 {
				totalKey = fantasy.ProjectionKey(entry.SeasonID, false)
				avgKey = fantasy.ProjectionKey(entry.SeasonID, true)
			}
			setBucket(stats, totalKey, total)
			setBucket(stats, avgKey, average)
		}
	}

	return fantasy.Player{
		Name:         raw.FullName,
		Position:     positionName(raw.DefaultPositionID),
		ProTeam:      proTeamName(raw.ProTeamID),
		InjuryStatus: raw.InjuryStatus,
		Stats:        stats,
		Schedule:     schedules[raw.ProTeamID],
	}
}

// mapBucket converts raw stat-ID keys to category codes. The applied fantasy
// total, when the source computed one, lands in FPTS.
func mapBucket(raw map[string]float64, applied *float64) fantasy.StatBucket {
	bucket := make(fantasy.StatBucket, len(raw)+1)
	for id, value := range raw {
		if code, ok := statCodes[id]; ok {
			bucket[code] = value
		}
	}
	if applied != nil {
		bucket[fantasy.CatFPTS] = *applied
	}
	return bucket
}

// setBucket assigns non-empty buckets only, so absence stays observable to
// the projection resolver.
func setBucket(stats map[string]fantasy.StatBucket, key string, bucket fantasy.StatBucket) {
	if len(bucket) > 0 {
		stats[key] = bucket
	}
}

// FetchRecentActivity pulls the league communication feed (adds, drops,
// trades), newest first, at most size entries. Private leagues may restrict
// this feed; the resulting *APIError carries that hint.
func (c *Client) FetchRecentActivity(ctx context.Context, size int) ([]fantasy.Transaction, error) {
	raw, err := c.fetchLeagueRaw(ctx)
	if err != nil {
		return nil, err
	}
	teamNames := make(map[int]string, len(raw.Teams))
	playerNames := make(map[int]string)
	for _, t := range raw.Teams {
		teamNames[t.ID] = t.Name
		for _, entry := range t.Roster.Entries {
			playerNames[entry.PlayerPoolEntry.Player.ID] = entry.PlayerPoolEntry.Player.FullName
		}
	}

	url := c.leagueURL() + "/communication/?view=kona_league_communication"
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch recent activity: %w", err)
	}

	var comm communicationResponse
	if err := json.Unmarshal(body, &comm); err != nil {
		return nil, fmt.Errorf("decode recent activity: %w", err)
	}

	var out []fantasy.Transaction
	for _, topic := range comm.Topics {
		for _, msg := range topic.Messages {
			action, ok := activityActions[msg.MessageTypeID]
			if !ok {
				continue
			}
			teamID := msg.From
			if addActions[msg.MessageTypeID] {
				teamID = msg.To
			}
			out = append(out, fantasy.Transaction{
				Date:   time.UnixMilli(topic.Date),
				Team:   teamNames[teamID],
				Action: action,
				Player: playerName(playerNames, msg.TargetID),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if size > 0 && len(out) > size {
		out = out[:size]
	}
	return out, nil
}

// playerName resolves a player id against the current rosters. Players
// already off every roster fall back to the raw id.
func playerName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Player %d", id)
}
