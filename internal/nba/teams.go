package nba

import "strings"

// Tricodes of the 30 NBA franchises.
var teamTricodes = []string{
	"ATL", "BKN", "BOS", "CHA", "CHI", "CLE", "DAL", "DEN", "DET", "GSW",
	"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
	"OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
}

// Per-game stat categories published by the team-leaders endpoint, in
// display order.
var statCategories = []string{
	"ppg", "trpg", "apg", "fgp", "ftp", "tpp", "bpg", "spg", "tpg", "pfpg",
}

var conferences = []string{"east", "west"}

var divisionsByConference = map[string][]string{
	"east": {"southeast", "atlantic", "central"},
	"west": {"southwest", "pacific", "northwest"},
}

var tricodeSet = map[string]struct{}{}

func init() {
	for _, code := range teamTricodes {
		tricodeSet[code] = struct{}{}
	}
}

// Teams returns the valid team tricodes.
func Teams() []string {
	out := make([]string, len(teamTricodes))
	copy(out, teamTricodes)
	return out
}

// StatCategories returns the per-game stat categories in display order.
func StatCategories() []string {
	out := make([]string, len(statCategories))
	copy(out, statCategories)
	return out
}

// Conferences returns the conference names.
func Conferences() []string {
	out := make([]string, len(conferences))
	copy(out, conferences)
	return out
}

// Divisions returns the division names of a conference, or of both
// conferences when the argument is empty.
func Divisions(conference string) ([]string, error) {
	switch strings.ToLower(conference) {
	case "":
		all := make([]string, 0, 6)
		for _, conf := range conferences {
			all = append(all, divisionsByConference[conf]...)
		}
		return all, nil
	case "east", "west":
		divs := divisionsByConference[strings.ToLower(conference)]
		out := make([]string, len(divs))
		copy(out, divs)
		return out, nil
	default:
		return nil, ErrUnknownConference
	}
}

// IsValidTricode reports whether code names a franchise, ignoring case.
func IsValidTricode(code string) bool {
	_, ok := tricodeSet[strings.ToUpper(code)]
	return ok
}

// isValidDivision reports whether name is a division of either conference.
func isValidDivision(name string) bool {
	for _, divs := range divisionsByConference {
		for _, d := range divs {
			if d == name {
				return true
			}
		}
	}
	return false
}

// normalizeTricode upper-cases a team code and validates it.
func normalizeTricode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := tricodeSet[c]; !ok {
		return "", &UnknownTeamError{Code: code}
	}
	return c, nil
}
