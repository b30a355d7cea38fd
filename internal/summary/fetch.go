package summary

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ffreport/ffreport/internal/model"
	"github.com/ffreport/ffreport/internal/season"
)

// fetchAll retrieves every division's settings, teams, and schedule
// concurrently and resolves each division's season structure.
//
// Fetches are independent per division, so they run under an errgroup with
// a concurrency limit. Correctness never depends on fetch ordering: results
// land in a pre-sized slice by index, and the caller sees either every
// division fully fetched or the first error. A failure for any single
// division cancels the remaining fetches and fails the run; no partial
// fetch set ever reaches the synchronizer.
func (a *Aggregator) fetchAll(ctx context.Context, divisions []Division) ([]model.DivisionSeason, error) {
	a.logger.Info("fetching division data",
		"divisions", len(divisions),
		"concurrency", a.concurrency,
	)

	results := make([]model.DivisionSeason, len(divisions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, division := range divisions {
		i, division := i, division
		g.Go(func() error {
			fetched, err := a.fetchDivision(ctx, division)
			if err != nil {
				return fmt.Errorf("division %s: %w", division.Name, err)
			}
			results[i] = fetched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fetchDivision retrieves one division's full dataset.
func (a *Aggregator) fetchDivision(ctx context.Context, division Division) (model.DivisionSeason, error) {
	settings, err := a.source.Settings(ctx, division.LeagueID)
	if err != nil {
		return model.DivisionSeason{}, err
	}
	settings.Division = division.Name

	structure, err := season.Resolve(settings)
	if err != nil {
		return model.DivisionSeason{}, err
	}

	teams, err := a.source.Teams(ctx, division.LeagueID)
	if err != nil {
		return model.DivisionSeason{}, err
	}
	teamIndex := make(map[int]model.TeamRecord, len(teams))
	for _, team := range teams {
		teamIndex[team.TeamID] = team
	}

	schedule, err := a.source.Schedule(ctx, division.LeagueID)
	if err != nil {
		return model.DivisionSeason{}, err
	}
	weeks := make(map[int][]model.MatchupRecord)
	for _, record := range schedule {
		weeks[record.Week] = append(weeks[record.Week], record)
	}

	a.logger.Debug("division fetched",
		"division", division.Name,
		"teams", len(teams),
		"matchups", len(schedule),
	)

	return model.DivisionSeason{
		Division:  division.Name,
		Settings:  settings,
		Structure: structure,
		Teams:     teamIndex,
		Weeks:     weeks,
	}, nil
}
