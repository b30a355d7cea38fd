package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ffreport/ffreport/internal/model"
)

// newTestClient starts an httptest server answering every league request
// with the given body and returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string, capture *http.Request) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = *r
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return NewClient(2025, Auth{ESPNS2: "s2-value", SWID: "{swid}"}, WithBaseURL(server.URL))
}

// TestSettings tests season-settings mapping from the mSettings view.
func TestSettings(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 111,
		"seasonId": 2025,
		"status": {"currentMatchupPeriod": 15, "finalScoringPeriod": 16, "firstScoringPeriod": 1, "isActive": true},
		"settings": {
			"name": "East Division",
			"scheduleSettings": {"matchupPeriodCount": 14, "playoffMatchupPeriodLength": 1, "playoffTeamCount": 4}
		}
	}`

	var captured http.Request
	client := newTestClient(t, http.StatusOK, body, &captured)

	settings, err := client.Settings(context.Background(), 111)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := model.DivisionSettings{
		LeagueID:           111,
		LeagueName:         "East Division",
		RegularSeasonWeeks: 14,
		FinalScoringPeriod: 16,
		PlayoffRoundLength: 1,
		PlayoffTeamCount:   4,
		CurrentWeek:        15,
	}
	if settings != expected {
		t.Errorf("got %+v, expected %+v", settings, expected)
	}

	if !strings.Contains(captured.URL.Path, "/seasons/2025/segments/0/leagues/111") {
		t.Errorf("unexpected request path %q", captured.URL.Path)
	}
	if got := captured.URL.Query().Get("view"); got != "mSettings" {
		t.Errorf("expected view=mSettings, got %q", got)
	}
	cookie := captured.Header.Get("Cookie")
	if !strings.Contains(cookie, "SWID={swid}") || !strings.Contains(cookie, "espn_s2=s2-value") {
		t.Errorf("expected auth cookies, got %q", cookie)
	}
}

// TestTeams tests team-record mapping with owner resolution.
func TestTeams(t *testing.T) {
	t.Parallel()

	body := `{
		"teams": [
			{
				"id": 1, "name": "Alpha", "abbrev": "ALP", "playoffSeed": 1,
				"owners": ["{guid-1}"],
				"record": {"overall": {"wins": 12, "losses": 2, "ties": 0, "pointsFor": 1650.5, "pointsAgainst": 1400.2}}
			},
			{
				"id": 2, "name": "", "abbrev": "BRV", "playoffSeed": 2,
				"owners": ["{guid-2}"],
				"record": {"overall": {"wins": 10, "losses": 4, "ties": 0, "pointsFor": 1500, "pointsAgainst": 1450}}
			}
		],
		"members": [
			{"id": "{guid-1}", "displayName": "Ann"},
			{"id": "{guid-2}", "displayName": "", "firstName": "Bob", "lastName": "Jones"}
		]
	}`

	client := newTestClient(t, http.StatusOK, body, nil)

	teams, err := client.Teams(context.Background(), 111)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	if teams[0].Team != "Alpha" || teams[0].Owner != "Ann" || teams[0].Seed != 1 {
		t.Errorf("unexpected first team: %+v", teams[0])
	}
	if teams[0].Wins != 12 || teams[0].PointsFor != 1650.5 {
		t.Errorf("unexpected first team record: %+v", teams[0])
	}

	// Empty team name falls back to the abbreviation; empty display name
	// falls back to the member's real name.
	if teams[1].Team != "BRV" {
		t.Errorf("expected abbreviation fallback, got %q", teams[1].Team)
	}
	if teams[1].Owner != "Bob Jones" {
		t.Errorf("expected real-name fallback, got %q", teams[1].Owner)
	}
}

// TestSchedule tests raw matchup-record mapping including bracket tags and
// score presence.
func TestSchedule(t *testing.T) {
	t.Parallel()

	body := `{
		"schedule": [
			{
				"matchupPeriodId": 14, "playoffTierType": "NONE", "winner": "HOME",
				"home": {"teamId": 1, "totalPoints": 120.5},
				"away": {"teamId": 2, "totalPoints": 90.1}
			},
			{
				"matchupPeriodId": 15, "playoffTierType": "WINNERS_BRACKET", "winner": "UNDECIDED",
				"home": {"teamId": 1, "totalPoints": 0},
				"away": {"teamId": 4, "totalPoints": 0}
			},
			{
				"matchupPeriodId": 15, "playoffTierType": "LOSERS_CONSOLATION_LADDER", "winner": "UNDECIDED",
				"home": {"teamId": 5, "totalPoints": 33.2},
				"away": {"teamId": 6, "totalPoints": 0}
			}
		]
	}`

	client := newTestClient(t, http.StatusOK, body, nil)

	records, err := client.Schedule(context.Background(), 111)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	regular := records[0]
	if regular.Playoff || regular.Tier != model.TierNone {
		t.Errorf("expected regular-season record, got %+v", regular)
	}
	if regular.Home.Score == nil || *regular.Home.Score != 120.5 {
		t.Errorf("expected decided home score 120.5, got %v", regular.Home.Score)
	}

	upcoming := records[1]
	if !upcoming.Playoff || upcoming.Tier != model.TierWinners {
		t.Errorf("expected winners-bracket record, got %+v", upcoming)
	}
	if upcoming.Home.Score != nil || upcoming.Away.Score != nil {
		t.Error("expected unset scores for an unstarted matchup")
	}

	// An undecided matchup with accumulated points keeps the partial score.
	inProgress := records[2]
	if inProgress.Home.Score == nil || *inProgress.Home.Score != 33.2 {
		t.Errorf("expected partial home score, got %v", inProgress.Home.Score)
	}
	if inProgress.Away.Score != nil {
		t.Error("expected unset away score mid-game")
	}
}

// TestAPIError tests the typed error for non-200 responses.
func TestAPIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.StatusUnauthorized, `{}`, nil)

	_, err := client.Settings(context.Background(), 111)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.LeagueID != 111 {
		t.Errorf("unexpected error detail: %+v", apiErr)
	}
	if !strings.Contains(apiErr.Error(), "ESPN_S2") {
		t.Errorf("expected credential hint in %q", apiErr.Error())
	}
}
