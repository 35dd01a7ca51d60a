package models

// TeamRecord aggregates a team's standings entry for the current season.
type TeamRecord struct {
	Total          Record  `json:"total"`
	Home           Record  `json:"home"`
	Away           Record  `json:"away"`
	LastTen        Record  `json:"last_ten"`
	ConferenceRank int     `json:"conference_rank"`
	DivisionRank   int     `json:"division_rank"`
	Streak         Streak  `json:"streak"`
	GamesBehind    float64 `json:"games_behind"`
	WinPercentage  float64 `json:"win_percentage"`
}

// TeamStanding is one row of a conference or division table.
type TeamStanding struct {
	Tricode     string  `json:"tricode"`
	GamesBehind float64 `json:"games_behind"`
	Rank        int     `json:"rank"`
}

// ConferenceStandings groups the ranked teams of both conferences.
type ConferenceStandings struct {
	East []TeamStanding `json:"east"`
	West []TeamStanding `json:"west"`
}
