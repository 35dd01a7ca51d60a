package nba

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/santigl/NBAStats/pkg/models"
)

// Game-leader categories published by the box score, in display order.
var gameLeaderCategories = []string{"points", "rebounds", "assists"}

// Service answers stat questions against the NBA.com JSON API. It keeps
// memoized player and team identifier dictionaries: they are rebuilt only
// when the backing documents actually travelled over the network instead
// of being answered by the HTTP cache.
type Service struct {
	client *Client
	logger *logrus.Logger

	mu              sync.Mutex
	personNames     map[string]models.PlayerName
	teamIDByTricode map[string]string
	tricodeByTeamID map[string]string
}

// NewService creates a stats service on top of an API client.
func NewService(client *Client, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Static vocabulary passthroughs, so the service satisfies the provider
// contract on its own.

func (s *Service) Teams() []string          { return Teams() }
func (s *Service) StatCategories() []string { return StatCategories() }
func (s *Service) Conferences() []string    { return Conferences() }

func (s *Service) Divisions(conference string) ([]string, error) {
	return Divisions(conference)
}

// TeamRecord returns the team's season record from the ungrouped league
// standings.
func (s *Service) TeamRecord(ctx context.Context, tricode string) (*models.TeamRecord, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return nil, err
	}

	teamID, err := s.teamID(ctx, code)
	if err != nil {
		return nil, err
	}

	entry, err := s.standingsEntry(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return extractTeamRecord(entry)
}

// TeamLeaders returns the team's season leader for every stat category,
// in category display order.
func (s *Service) TeamLeaders(ctx context.Context, tricode string) ([]models.CategoryLeader, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return nil, err
	}

	teamID, err := s.teamID(ctx, code)
	if err != nil {
		return nil, err
	}

	url, err := s.teamLeadersURL(ctx, teamID)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	std, err := digMap(doc, "league", "standard")
	if err != nil {
		return nil, err
	}

	leaders := make([]models.CategoryLeader, 0, len(statCategories))
	for _, category := range statCategories {
		arr, err := getArray(std, category)
		if err != nil {
			return nil, err
		}
		if len(arr) == 0 {
			return nil, &FormatError{Field: "league.standard." + category, Detail: "empty leader list"}
		}

		// First listed player leads the category.
		first, ok := arr[0].(map[string]interface{})
		if !ok {
			return nil, &FormatError{Field: "league.standard." + category}
		}

		value, err := getNumberString(first, "value")
		if err != nil {
			return nil, err
		}
		personID, err := getString(first, "personId")
		if err != nil {
			return nil, err
		}
		name, err := s.playerName(ctx, personID)
		if err != nil {
			return nil, err
		}

		leaders = append(leaders, models.CategoryLeader{
			Category: category,
			Player:   name,
			Value:    value,
		})
	}

	return leaders, nil
}

// GameLeaders returns the points, rebounds and assists leaders of both
// sides of the team's game in progress.
func (s *Service) GameLeaders(ctx context.Context, tricode string) (*models.GameLeaders, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return nil, err
	}

	game, err := s.gameInProgress(ctx, code)
	if err != nil {
		return nil, err
	}

	basic, stats, err := s.boxScore(ctx, game)
	if err != nil {
		return nil, err
	}

	homeTri, awayTri, err := boxScoreTricodes(basic)
	if err != nil {
		return nil, err
	}

	homeLeaders, err := s.extractGameLeaderStats(ctx, stats, "hTeam")
	if err != nil {
		return nil, err
	}
	awayLeaders, err := s.extractGameLeaderStats(ctx, stats, "vTeam")
	if err != nil {
		return nil, err
	}

	return &models.GameLeaders{
		Home:  models.TeamGameLeaders{Tricode: homeTri, Leaders: homeLeaders},
		Away:  models.TeamGameLeaders{Tricode: awayTri, Leaders: awayLeaders},
		Final: game.Ended,
	}, nil
}

// GameFouls returns both sides' personal foul totals for the team's game
// in progress.
func (s *Service) GameFouls(ctx context.Context, tricode string) (*models.GameFouls, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return nil, err
	}

	game, err := s.gameInProgress(ctx, code)
	if err != nil {
		return nil, err
	}

	basic, stats, err := s.boxScore(ctx, game)
	if err != nil {
		return nil, err
	}

	homeTri, awayTri, err := boxScoreTricodes(basic)
	if err != nil {
		return nil, err
	}

	homeTotals, err := digMap(stats, "hTeam", "totals")
	if err != nil {
		return nil, err
	}
	homeFouls, err := getInt(homeTotals, "pFouls")
	if err != nil {
		return nil, err
	}

	awayTotals, err := digMap(stats, "vTeam", "totals")
	if err != nil {
		return nil, err
	}
	awayFouls, err := getInt(awayTotals, "pFouls")
	if err != nil {
		return nil, err
	}

	return &models.GameFouls{
		HomeTricode: homeTri,
		AwayTricode: awayTri,
		HomeFouls:   homeFouls,
		AwayFouls:   awayFouls,
		Final:       game.Ended,
	}, nil
}

// GameNugget returns the scoreboard entry for the team's game in progress.
// Its Nugget field carries the highlight text, which may still be empty
// early in the game.
func (s *Service) GameNugget(ctx context.Context, tricode string) (*models.Game, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return nil, err
	}
	return s.gameInProgress(ctx, code)
}

// IsTeamPlaying reports whether the team has a game in progress today.
func (s *Service) IsTeamPlaying(ctx context.Context, tricode string) (bool, error) {
	code, err := normalizeTricode(tricode)
	if err != nil {
		return false, err
	}

	_, err = s.gameInProgress(ctx, code)
	if err != nil {
		var notPlaying *NotPlayingError
		if errors.As(err, &notPlaying) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ConferenceStandings returns both conferences' tables in ranking order.
func (s *Service) ConferenceStandings(ctx context.Context) (*models.ConferenceStandings, error) {
	url, err := s.confStandingsURL(ctx)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	conf, err := digMap(doc, "league", "standard", "conference")
	if err != nil {
		return nil, err
	}

	east, err := s.extractConferenceTable(ctx, conf, "east")
	if err != nil {
		return nil, err
	}
	west, err := s.extractConferenceTable(ctx, conf, "west")
	if err != nil {
		return nil, err
	}

	return &models.ConferenceStandings{East: east, West: west}, nil
}

// DivisionStandings returns one division's table in ranking order.
func (s *Service) DivisionStandings(ctx context.Context, division string) ([]models.TeamStanding, error) {
	div := strings.ToLower(strings.TrimSpace(division))
	if !isValidDivision(div) {
		return nil, ErrUnknownDivision
	}

	url, err := s.divStandingsURL(ctx)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	conf, err := digMap(doc, "league", "standard", "conference")
	if err != nil {
		return nil, err
	}

	for _, confName := range conferences {
		confMap, err := getMap(conf, confName)
		if err != nil {
			return nil, err
		}
		arr, ok := confMap[div].([]interface{})
		if !ok {
			continue
		}

		rows := make([]models.TeamStanding, 0, len(arr))
		for _, tv := range arr {
			team, ok := tv.(map[string]interface{})
			if !ok {
				return nil, &FormatError{Field: "conference." + confName + "." + div}
			}
			row, err := s.extractStandingRow(ctx, team, "divGamesBehind", "divRank")
			if err != nil {
				return nil, err
			}
			rows = append(rows, *row)
		}
		return rows, nil
	}

	return nil, &FormatError{Field: "league.standard.conference." + div, Detail: "division not listed"}
}

// boxScore fetches the game's box score and returns its two halves.
func (s *Service) boxScore(ctx context.Context, game *models.Game) (basic, stats map[string]interface{}, err error) {
	url, err := s.boxScoreURL(ctx, game.StartDate, game.GameID)
	if err != nil {
		return nil, nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	basic, err = digMap(doc, "basicGameData")
	if err != nil {
		return nil, nil, err
	}
	stats, err = digMap(doc, "stats")
	if err != nil {
		return nil, nil, err
	}
	return basic, stats, nil
}

// boxScoreTricodes pulls both team codes out of the basic game data.
func boxScoreTricodes(basic map[string]interface{}) (home, away string, err error) {
	homeTeam, err := digMap(basic, "hTeam")
	if err != nil {
		return "", "", err
	}
	home, err = getString(homeTeam, "triCode")
	if err != nil {
		return "", "", err
	}

	awayTeam, err := digMap(basic, "vTeam")
	if err != nil {
		return "", "", err
	}
	away, err = getString(awayTeam, "triCode")
	if err != nil {
		return "", "", err
	}
	return home, away, nil
}

// extractGameLeaderStats reads one side's category leaders from the box
// score stats block. Ties keep every listed player.
func (s *Service) extractGameLeaderStats(ctx context.Context, stats map[string]interface{}, side string) ([]models.GameLeaderStat, error) {
	leaders, err := digMap(stats, side, "leaders")
	if err != nil {
		return nil, err
	}

	out := make([]models.GameLeaderStat, 0, len(gameLeaderCategories))
	for _, category := range gameLeaderCategories {
		cat, err := getMap(leaders, category)
		if err != nil {
			return nil, err
		}

		value, err := getNumberString(cat, "value")
		if err != nil {
			return nil, err
		}

		playersArr, err := getArray(cat, "players")
		if err != nil {
			return nil, err
		}

		players := make([]models.PlayerName, 0, len(playersArr))
		for _, pv := range playersArr {
			p, ok := pv.(map[string]interface{})
			if !ok {
				return nil, &FormatError{Field: side + ".leaders." + category + ".players"}
			}
			personID, err := getString(p, "personId")
			if err != nil {
				return nil, err
			}
			name, err := s.playerName(ctx, personID)
			if err != nil {
				return nil, err
			}
			players = append(players, name)
		}

		out = append(out, models.GameLeaderStat{
			Category: category,
			Players:  players,
			Value:    value,
		})
	}

	return out, nil
}

// gameInProgress finds today's live game involving the team.
func (s *Service) gameInProgress(ctx context.Context, code string) (*models.Game, error) {
	teamID, err := s.teamID(ctx, code)
	if err != nil {
		return nil, err
	}

	games, err := s.todayGames(ctx)
	if err != nil {
		return nil, err
	}

	for i := range games {
		g := &games[i]
		if !g.InProgress() {
			continue
		}
		if g.HomeTeamID == teamID || g.AwayTeamID == teamID {
			return g, nil
		}
	}
	return nil, &NotPlayingError{Tricode: code}
}

// todayGames returns the scoreboard entries for today's slate.
func (s *Service) todayGames(ctx context.Context) ([]models.Game, error) {
	url, err := s.scoreboardURL(ctx)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	arr, err := getArray(doc, "games")
	if err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(arr))
	for _, gv := range arr {
		g, ok := gv.(map[string]interface{})
		if !ok {
			return nil, &FormatError{Field: "games"}
		}
		game, err := extractGame(g)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}

// extractGame pulls the fields of one scoreboard entry.
func extractGame(g map[string]interface{}) (*models.Game, error) {
	gameID, err := getString(g, "gameId")
	if err != nil {
		return nil, err
	}

	home, err := digMap(g, "hTeam")
	if err != nil {
		return nil, err
	}
	homeTri, err := getString(home, "triCode")
	if err != nil {
		return nil, err
	}
	homeID, err := getString(home, "teamId")
	if err != nil {
		return nil, err
	}

	away, err := digMap(g, "vTeam")
	if err != nil {
		return nil, err
	}
	awayTri, err := getString(away, "triCode")
	if err != nil {
		return nil, err
	}
	awayID, err := getString(away, "teamId")
	if err != nil {
		return nil, err
	}

	startDate, err := getString(g, "startDateEastern")
	if err != nil {
		return nil, err
	}

	period, err := digMap(g, "period")
	if err != nil {
		return nil, err
	}
	current, err := getInt(period, "current")
	if err != nil {
		return nil, err
	}

	statusNum, err := getInt(g, "statusNum")
	if err != nil {
		return nil, err
	}

	nugget, err := digMap(g, "nugget")
	if err != nil {
		return nil, err
	}
	nuggetText, err := getString(nugget, "text")
	if err != nil {
		return nil, err
	}

	return &models.Game{
		GameID:      gameID,
		HomeTricode: homeTri,
		HomeTeamID:  homeID,
		AwayTricode: awayTri,
		AwayTeamID:  awayID,
		StartDate:   startDate,
		Period:      current,
		Ended:       statusNum == 3,
		Nugget:      nuggetText,
	}, nil
}

// standingsEntry finds a team's row in the ungrouped standings.
func (s *Service) standingsEntry(ctx context.Context, teamID string) (map[string]interface{}, error) {
	url, err := s.standingsURL(ctx)
	if err != nil {
		return nil, err
	}

	doc, _, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	std, err := digMap(doc, "league", "standard")
	if err != nil {
		return nil, err
	}
	teams, err := getArray(std, "teams")
	if err != nil {
		return nil, err
	}

	for _, tv := range teams {
		team, ok := tv.(map[string]interface{})
		if !ok {
			continue
		}
		id, err := getString(team, "teamId")
		if err != nil {
			return nil, err
		}
		if id == teamID {
			return team, nil
		}
	}
	return nil, &FormatError{Field: "league.standard.teams", Detail: "team " + teamID + " not listed"}
}

// extractTeamRecord pulls the record fields out of a standings row.
func extractTeamRecord(entry map[string]interface{}) (*models.TeamRecord, error) {
	rec := &models.TeamRecord{}

	records := []struct {
		dst        *models.Record
		wins, loss string
	}{
		{&rec.Total, "win", "loss"},
		{&rec.Home, "homeWin", "homeLoss"},
		{&rec.Away, "awayWin", "awayLoss"},
		{&rec.LastTen, "lastTenWin", "lastTenLoss"},
	}
	for _, r := range records {
		wins, err := getInt(entry, r.wins)
		if err != nil {
			return nil, err
		}
		losses, err := getInt(entry, r.loss)
		if err != nil {
			return nil, err
		}
		*r.dst = models.Record{Wins: wins, Losses: losses}
	}

	confRank, err := getInt(entry, "confRank")
	if err != nil {
		return nil, err
	}
	rec.ConferenceRank = confRank

	divRank, err := getInt(entry, "divRank")
	if err != nil {
		return nil, err
	}
	rec.DivisionRank = divRank

	streakGames, err := getInt(entry, "streak")
	if err != nil {
		return nil, err
	}
	isWinStreak, err := getBool(entry, "isWinStreak")
	if err != nil {
		return nil, err
	}
	rec.Streak = models.Streak{Games: streakGames, IsWinning: isWinStreak}

	gamesBehind, err := getFloat(entry, "gamesBehind")
	if err != nil {
		return nil, err
	}
	rec.GamesBehind = gamesBehind

	winPct, err := getFloat(entry, "winPct")
	if err != nil {
		return nil, err
	}
	rec.WinPercentage = winPct

	return rec, nil
}

// extractConferenceTable reads one conference's ranked rows.
func (s *Service) extractConferenceTable(ctx context.Context, conf map[string]interface{}, name string) ([]models.TeamStanding, error) {
	arr, err := getArray(conf, name)
	if err != nil {
		return nil, err
	}

	rows := make([]models.TeamStanding, 0, len(arr))
	for _, tv := range arr {
		team, ok := tv.(map[string]interface{})
		if !ok {
			return nil, &FormatError{Field: "conference." + name}
		}
		row, err := s.extractStandingRow(ctx, team, "gamesBehind", "confRank")
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

// extractStandingRow reads one standings row, resolving the team id back
// to its tricode.
func (s *Service) extractStandingRow(ctx context.Context, team map[string]interface{}, gbField, rankField string) (*models.TeamStanding, error) {
	teamID, err := getString(team, "teamId")
	if err != nil {
		return nil, err
	}
	tricode, err := s.tricode(ctx, teamID)
	if err != nil {
		return nil, err
	}
	gb, err := getFloat(team, gbField)
	if err != nil {
		return nil, err
	}
	rank, err := getInt(team, rankField)
	if err != nil {
		return nil, err
	}
	return &models.TeamStanding{Tricode: tricode, GamesBehind: gb, Rank: rank}, nil
}

// teamID resolves a validated tricode to the API's team identifier.
func (s *Service) teamID(ctx context.Context, tricode string) (string, error) {
	ids, _, err := s.teamDictionaries(ctx)
	if err != nil {
		return "", err
	}
	id, ok := ids[tricode]
	if !ok {
		return "", &FormatError{Field: "league.standard", Detail: "team " + tricode + " not listed"}
	}
	return id, nil
}

// tricode resolves a team identifier back to its tricode.
func (s *Service) tricode(ctx context.Context, teamID string) (string, error) {
	_, codes, err := s.teamDictionaries(ctx)
	if err != nil {
		return "", err
	}
	code, ok := codes[teamID]
	if !ok {
		return "", &FormatError{Field: "league.standard", Detail: "team id " + teamID + " not listed"}
	}
	return code, nil
}

// teamDictionaries returns the tricode->id and id->tricode maps. When the
// team list is answered by the HTTP cache and parsed copies exist, those
// are returned without re-walking the document. The returned maps are
// never mutated after they are built.
func (s *Service) teamDictionaries(ctx context.Context) (map[string]string, map[string]string, error) {
	url, err := s.teamListURL(ctx)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, fromCache, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	if fromCache && s.teamIDByTricode != nil && s.tricodeByTeamID != nil {
		return s.teamIDByTricode, s.tricodeByTeamID, nil
	}

	league, err := getMap(doc, "league")
	if err != nil {
		return nil, nil, err
	}
	arr, err := getArray(league, "standard")
	if err != nil {
		return nil, nil, err
	}

	byTricode := make(map[string]string, len(arr))
	byID := make(map[string]string, len(arr))
	for _, tv := range arr {
		team, ok := tv.(map[string]interface{})
		if !ok {
			return nil, nil, &FormatError{Field: "league.standard"}
		}
		franchise, err := getBool(team, "isNBAFranchise")
		if err != nil {
			return nil, nil, err
		}
		if !franchise {
			continue
		}
		code, err := getString(team, "tricode")
		if err != nil {
			return nil, nil, err
		}
		id, err := getString(team, "teamId")
		if err != nil {
			return nil, nil, err
		}
		byTricode[code] = id
		byID[id] = code
	}

	s.teamIDByTricode = byTricode
	s.tricodeByTeamID = byID
	s.logger.WithField("teams", len(byTricode)).Debug("rebuilt team dictionaries")

	return byTricode, byID, nil
}

// playerName resolves a person identifier to the player's name.
func (s *Service) playerName(ctx context.Context, personID string) (models.PlayerName, error) {
	names, err := s.personDirectory(ctx)
	if err != nil {
		return models.PlayerName{}, err
	}
	name, ok := names[personID]
	if !ok {
		return models.PlayerName{}, &FormatError{Field: "personId", Detail: "unknown person " + personID}
	}
	return name, nil
}

// personDirectory returns the personId -> name map, rebuilt only when the
// league roster came over the network.
func (s *Service) personDirectory(ctx context.Context) (map[string]models.PlayerName, error) {
	url, err := s.playerListURL(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, fromCache, err := s.client.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}
	if fromCache && s.personNames != nil {
		return s.personNames, nil
	}

	league, err := getMap(doc, "league")
	if err != nil {
		return nil, err
	}
	arr, err := getArray(league, "standard")
	if err != nil {
		return nil, err
	}

	names := make(map[string]models.PlayerName, len(arr))
	for _, pv := range arr {
		player, ok := pv.(map[string]interface{})
		if !ok {
			return nil, &FormatError{Field: "league.standard"}
		}
		personID, err := getString(player, "personId")
		if err != nil {
			return nil, err
		}
		firstName, err := getString(player, "firstName")
		if err != nil {
			return nil, err
		}
		lastName, err := getString(player, "lastName")
		if err != nil {
			return nil, err
		}
		names[personID] = models.PlayerName{FirstName: firstName, LastName: lastName}
	}

	s.personNames = names
	s.logger.WithField("players", len(names)).Debug("rebuilt player directory")

	return names, nil
}
