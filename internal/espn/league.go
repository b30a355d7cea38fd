package espn

import (
	"context"
	"strings"

	"github.com/ffreport/ffreport/internal/model"
)

// winnerUndecided is the winner value ESPN reports for unscored matchups.
const winnerUndecided = "UNDECIDED"

// Settings fetches one league's season settings. The Division field of the
// result is left empty; the caller attaches its configured division name.
func (c *Client) Settings(ctx context.Context, leagueID int) (model.DivisionSettings, error) {
	var resp leagueResponse
	if err := c.get(ctx, leagueID, []string{"mSettings"}, &resp); err != nil {
		return model.DivisionSettings{}, err
	}

	return model.DivisionSettings{
		LeagueID:           resp.ID,
		LeagueName:         resp.Settings.Name,
		RegularSeasonWeeks: resp.Settings.ScheduleSettings.MatchupPeriodCount,
		FinalScoringPeriod: resp.Status.FinalScoringPeriod,
		PlayoffRoundLength: resp.Settings.ScheduleSettings.PlayoffMatchupPeriodLength,
		PlayoffTeamCount:   resp.Settings.ScheduleSettings.PlayoffTeamCount,
		CurrentWeek:        resp.Status.CurrentMatchupPeriod,
	}, nil
}

// Teams fetches one league's team records with owner display names and
// playoff seeds resolved.
func (c *Client) Teams(ctx context.Context, leagueID int) ([]model.TeamRecord, error) {
	var resp leagueResponse
	if err := c.get(ctx, leagueID, []string{"mTeam"}, &resp); err != nil {
		return nil, err
	}

	owners := make(map[string]string, len(resp.Members))
	for _, member := range resp.Members {
		owners[member.ID] = ownerName(member)
	}

	teams := make([]model.TeamRecord, 0, len(resp.Teams))
	for _, team := range resp.Teams {
		record := model.TeamRecord{
			TeamID:        team.ID,
			Team:          teamName(team),
			Seed:          team.PlayoffSeed,
			Wins:          team.Record.Overall.Wins,
			Losses:        team.Record.Overall.Losses,
			Ties:          team.Record.Overall.Ties,
			PointsFor:     team.Record.Overall.PointsFor,
			PointsAgainst: team.Record.Overall.PointsAgainst,
		}
		if len(team.Owners) > 0 {
			record.Owner = owners[team.Owners[0]]
		}
		teams = append(teams, record)
	}
	return teams, nil
}

// Schedule fetches one league's full season schedule as raw matchup
// records, one per matchup period and pairing.
func (c *Client) Schedule(ctx context.Context, leagueID int) ([]model.MatchupRecord, error) {
	var resp leagueResponse
	if err := c.get(ctx, leagueID, []string{"mMatchup"}, &resp); err != nil {
		return nil, err
	}

	records := make([]model.MatchupRecord, 0, len(resp.Schedule))
	for _, item := range resp.Schedule {
		decided := item.Winner != "" && item.Winner != winnerUndecided
		records = append(records, model.MatchupRecord{
			Week:    item.MatchupPeriodID,
			Playoff: item.PlayoffTierType != "" && item.PlayoffTierType != string(model.TierNone),
			Tier:    model.BracketTier(item.PlayoffTierType),
			Home:    recordSide(item.Home, decided),
			Away:    recordSide(item.Away, decided),
		})
	}
	return records, nil
}

// recordSide maps a schedule side to a raw record side. A score counts as
// posted once the matchup is decided or points have accumulated; ESPN
// reports zero totals for games that have not started.
func recordSide(side scheduleSide, decided bool) model.RecordSide {
	rs := model.RecordSide{TeamID: side.TeamID}
	if decided || side.TotalPoints > 0 {
		score := side.TotalPoints
		rs.Score = &score
	}
	return rs
}

// ownerName returns the member's display name, falling back to the real
// name when the display name is unset.
func ownerName(member memberResponse) string {
	if member.DisplayName != "" {
		return member.DisplayName
	}
	return strings.TrimSpace(member.FirstName + " " + member.LastName)
}

// teamName returns the team name, falling back to the abbreviation.
func teamName(team teamResponse) string {
	if name := strings.TrimSpace(team.Name); name != "" {
		return name
	}
	return team.Abbrev
}
