package models

// PlayerName identifies a player by first and last name.
type PlayerName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Record is a wins-losses pair.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Streak is a run of consecutive wins or losses.
type Streak struct {
	Games     int  `json:"games"`
	IsWinning bool `json:"is_winning"`
}
