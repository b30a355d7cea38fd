package espn

// Wire shapes for the ESPN fantasy v3 read API. These mirror the JSON the
// API actually returns and never leave this package; fetchers translate
// them into internal/model types.

// leagueResponse is the common league envelope for all views.
type leagueResponse struct {
	ID              int              `json:"id"`
	SeasonID        int              `json:"seasonId"`
	ScoringPeriodID int              `json:"scoringPeriodId"`
	Status          statusResponse   `json:"status"`
	Settings        settingsResponse `json:"settings"`
	Teams           []teamResponse   `json:"teams"`
	Members         []memberResponse `json:"members"`
	Schedule        []scheduleItem   `json:"schedule"`
}

// statusResponse carries the league's season progress markers.
type statusResponse struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

// settingsResponse carries the league settings relevant to season structure.
type settingsResponse struct {
	Name             string                   `json:"name"`
	ScheduleSettings scheduleSettingsResponse `json:"scheduleSettings"`
}

// scheduleSettingsResponse carries the schedule geometry.
type scheduleSettingsResponse struct {
	MatchupPeriodCount         int `json:"matchupPeriodCount"`
	PlayoffMatchupPeriodLength int `json:"playoffMatchupPeriodLength"`
	PlayoffTeamCount           int `json:"playoffTeamCount"`
}

// teamResponse is one team in the mTeam view.
type teamResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Abbrev      string         `json:"abbrev"`
	PlayoffSeed int            `json:"playoffSeed"`
	Owners      []string       `json:"owners"`
	Record      recordResponse `json:"record"`
}

// recordResponse wraps the team's overall record.
type recordResponse struct {
	Overall recordDetailResponse `json:"overall"`
}

// recordDetailResponse is the win/loss line for one record scope.
type recordDetailResponse struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// memberResponse is one league member, used to resolve owner display names.
type memberResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// scheduleItem is one matchup in the mMatchup view.
type scheduleItem struct {
	ID              int              `json:"id"`
	MatchupPeriodID int              `json:"matchupPeriodId"`
	PlayoffTierType string           `json:"playoffTierType"`
	Winner          string           `json:"winner"`
	Home            scheduleSide     `json:"home"`
	Away            scheduleSide     `json:"away"`
}

// scheduleSide is one side of a schedule item.
type scheduleSide struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}
