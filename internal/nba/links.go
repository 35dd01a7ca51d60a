package nba

import (
	"context"
	"strings"
)

// The API publishes every endpoint path in today.json's "links" object
// instead of documenting fixed routes. URLs are built by looking a path up
// there, optionally rewriting it to its slower cache variant and filling
// its placeholders. The same statistic and identifier always yield the
// same URL.
const todayPath = "/15m/prod/v1/today.json"

// Link names inside the today.json directory.
const (
	linkScoreboard    = "todayScoreboard"
	linkPlayerList    = "leagueRosterPlayers"
	linkTeamList      = "teams"
	linkTeamLeaders   = "teamLeaders"
	linkStandings     = "leagueUngroupedStandings"
	linkBoxScore      = "boxscore"
	linkConfStandings = "leagueConfStandings"
	linkDivStandings  = "leagueDivStandings"
)

// slowPath rewrites a link to its 15-minute max-age variant. Everything but
// the live scoreboard is fetched through it.
func slowPath(path string) string {
	return strings.ReplaceAll(path, "10s", "15m")
}

// expandPath fills {{name}} placeholders in a link template.
func expandPath(path string, params map[string]string) string {
	for name, value := range params {
		path = strings.ReplaceAll(path, "{{"+name+"}}", value)
	}
	return path
}

// links fetches the today.json directory and returns its link map.
func (s *Service) links(ctx context.Context) (map[string]string, error) {
	doc, _, err := s.client.GetJSON(ctx, s.client.URL(todayPath))
	if err != nil {
		return nil, err
	}

	raw, err := getMap(doc, "links")
	if err != nil {
		return nil, err
	}

	links := make(map[string]string, len(raw))
	for name, v := range raw {
		if path, ok := v.(string); ok {
			links[name] = path
		}
	}
	return links, nil
}

// link returns one named path from the directory.
func (s *Service) link(ctx context.Context, name string) (string, error) {
	links, err := s.links(ctx)
	if err != nil {
		return "", err
	}
	path, ok := links[name]
	if !ok {
		return "", &FormatError{Field: "links." + name}
	}
	return path, nil
}

// Time critical, kept on the fast link:
func (s *Service) scoreboardURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkScoreboard)
	if err != nil {
		return "", err
	}
	return s.client.URL(path), nil
}

// Non time-critical, rewritten to the 15-minute variant:
func (s *Service) playerListURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkPlayerList)
	if err != nil {
		return "", err
	}
	return s.client.URL(slowPath(path)), nil
}

func (s *Service) teamListURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkTeamList)
	if err != nil {
		return "", err
	}
	return s.client.URL(slowPath(path)), nil
}

func (s *Service) teamLeadersURL(ctx context.Context, teamID string) (string, error) {
	path, err := s.link(ctx, linkTeamLeaders)
	if err != nil {
		return "", err
	}
	path = expandPath(path, map[string]string{"teamUrlCode": teamID})
	return s.client.URL(slowPath(path)), nil
}

func (s *Service) standingsURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkStandings)
	if err != nil {
		return "", err
	}
	return s.client.URL(slowPath(path)), nil
}

func (s *Service) boxScoreURL(ctx context.Context, gameDate, gameID string) (string, error) {
	path, err := s.link(ctx, linkBoxScore)
	if err != nil {
		return "", err
	}
	path = expandPath(slowPath(path), map[string]string{
		"gameDate": gameDate,
		"gameId":   gameID,
	})
	return s.client.URL(path), nil
}

func (s *Service) confStandingsURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkConfStandings)
	if err != nil {
		return "", err
	}
	return s.client.URL(slowPath(path)), nil
}

func (s *Service) divStandingsURL(ctx context.Context) (string, error) {
	path, err := s.link(ctx, linkDivStandings)
	if err != nil {
		return "", err
	}
	return s.client.URL(slowPath(path)), nil
}
