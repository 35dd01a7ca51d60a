package models

// CategoryLeader is a team's season leader for one stat category.
// Value keeps the API's decimal string form ("27.3", "0.475").
type CategoryLeader struct {
	Category string     `json:"category"`
	Player   PlayerName `json:"player"`
	Value    string     `json:"value"`
}

// GameLeaderStat is a category lead inside a live game. Ties carry
// more than one player.
type GameLeaderStat struct {
	Category string       `json:"category"`
	Players  []PlayerName `json:"players"`
	Value    string       `json:"value"`
}

// TeamGameLeaders holds one side's in-game leaders.
type TeamGameLeaders struct {
	Tricode string           `json:"tricode"`
	Leaders []GameLeaderStat `json:"leaders"`
}

// GameLeaders holds both sides' in-game leaders for one game.
type GameLeaders struct {
	Home  TeamGameLeaders `json:"home"`
	Away  TeamGameLeaders `json:"away"`
	Final bool            `json:"final"`
}
