package models

// Game is one scoreboard entry for today's slate.
type Game struct {
	GameID      string `json:"game_id"`
	HomeTricode string `json:"home_tricode"`
	HomeTeamID  string `json:"home_team_id"`
	AwayTricode string `json:"away_tricode"`
	AwayTeamID  string `json:"away_team_id"`
	StartDate   string `json:"start_date"` // YYYYMMDD, eastern time
	Period      int    `json:"period"`
	Ended       bool   `json:"ended"`
	Nugget      string `json:"nugget"`
}

// InProgress reports whether the game has tipped off.
func (g *Game) InProgress() bool {
	return g.Period != 0
}

// GameFouls holds both sides' personal foul totals for a live game.
type GameFouls struct {
	HomeTricode string `json:"home_tricode"`
	AwayTricode string `json:"away_tricode"`
	HomeFouls   int    `json:"home_fouls"`
	AwayFouls   int    `json:"away_fouls"`
	Final       bool   `json:"final"`
}
