package bot_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/santigl/NBAStats/internal/bot"
	"github.com/santigl/NBAStats/internal/format"
	"github.com/santigl/NBAStats/internal/nba"
	"github.com/santigl/NBAStats/pkg/contracts"
	"github.com/santigl/NBAStats/pkg/models"
)

// stubProvider implements contracts.StatsProvider for testing. Calls with
// no function configured fail, so tests catch handlers reaching for data
// they should not need.
type stubProvider struct {
	teams []string

	teamRecordFn    func(ctx context.Context, tricode string) (*models.TeamRecord, error)
	teamLeadersFn   func(ctx context.Context, tricode string) ([]models.CategoryLeader, error)
	confStandingsFn func(ctx context.Context) (*models.ConferenceStandings, error)
	divStandingsFn  func(ctx context.Context, division string) ([]models.TeamStanding, error)
	isPlayingFn     func(ctx context.Context, tricode string) (bool, error)
	gameLeadersFn   func(ctx context.Context, tricode string) (*models.GameLeaders, error)
	gameFoulsFn     func(ctx context.Context, tricode string) (*models.GameFouls, error)
	gameNuggetFn    func(ctx context.Context, tricode string) (*models.Game, error)
}

var _ contracts.StatsProvider = (*stubProvider)(nil)

func (s *stubProvider) Teams() []string {
	if s.teams != nil {
		return s.teams
	}
	return nba.Teams()
}

func (s *stubProvider) StatCategories() []string { return nba.StatCategories() }
func (s *stubProvider) Conferences() []string    { return nba.Conferences() }

func (s *stubProvider) Divisions(conference string) ([]string, error) {
	return nba.Divisions(conference)
}

func (s *stubProvider) TeamRecord(ctx context.Context, tricode string) (*models.TeamRecord, error) {
	if s.teamRecordFn == nil {
		return nil, errors.New("unexpected TeamRecord call")
	}
	return s.teamRecordFn(ctx, tricode)
}

func (s *stubProvider) TeamLeaders(ctx context.Context, tricode string) ([]models.CategoryLeader, error) {
	if s.teamLeadersFn == nil {
		return nil, errors.New("unexpected TeamLeaders call")
	}
	return s.teamLeadersFn(ctx, tricode)
}

func (s *stubProvider) ConferenceStandings(ctx context.Context) (*models.ConferenceStandings, error) {
	if s.confStandingsFn == nil {
		return nil, errors.New("unexpected ConferenceStandings call")
	}
	return s.confStandingsFn(ctx)
}

func (s *stubProvider) DivisionStandings(ctx context.Context, division string) ([]models.TeamStanding, error) {
	if s.divStandingsFn == nil {
		return nil, errors.New("unexpected DivisionStandings call")
	}
	return s.divStandingsFn(ctx, division)
}

func (s *stubProvider) IsTeamPlaying(ctx context.Context, tricode string) (bool, error) {
	if s.isPlayingFn == nil {
		return false, errors.New("unexpected IsTeamPlaying call")
	}
	return s.isPlayingFn(ctx, tricode)
}

func (s *stubProvider) GameLeaders(ctx context.Context, tricode string) (*models.GameLeaders, error) {
	if s.gameLeadersFn == nil {
		return nil, errors.New("unexpected GameLeaders call")
	}
	return s.gameLeadersFn(ctx, tricode)
}

func (s *stubProvider) GameFouls(ctx context.Context, tricode string) (*models.GameFouls, error) {
	if s.gameFoulsFn == nil {
		return nil, errors.New("unexpected GameFouls call")
	}
	return s.gameFoulsFn(ctx, tricode)
}

func (s *stubProvider) GameNugget(ctx context.Context, tricode string) (*models.Game, error) {
	if s.gameNuggetFn == nil {
		return nil, errors.New("unexpected GameNugget call")
	}
	return s.gameNuggetFn(ctx, tricode)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestBot(provider *stubProvider) *bot.Bot {
	return bot.New(provider, format.New(format.Plain), testLogger())
}

func TestCommandNames(t *testing.T) {
	b := newTestBot(&stubProvider{})

	want := []string{"fouls", "gameleaders", "leaders", "nugget", "record", "standings", "teamleaders", "teams"}
	assert.Equal(t, want, b.CommandNames())
}

func TestHandleCommand_Unknown(t *testing.T) {
	b := newTestBot(&stubProvider{})

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "frobnicate"})

	want := `Unknown command "frobnicate". Available: ` +
		"fouls, gameleaders, leaders, nugget, record, standings, teamleaders, teams"
	assert.Equal(t, want, reply.Text)
}

func TestRecordCommand(t *testing.T) {
	var gotTricode string
	provider := &stubProvider{
		teamRecordFn: func(ctx context.Context, tricode string) (*models.TeamRecord, error) {
			gotTricode = tricode
			return &models.TeamRecord{
				Total:          models.Record{Wins: 34, Losses: 20},
				Home:           models.Record{Wins: 20, Losses: 8},
				Away:           models.Record{Wins: 14, Losses: 12},
				LastTen:        models.Record{Wins: 7, Losses: 3},
				ConferenceRank: 5,
				DivisionRank:   2,
				Streak:         models.Streak{Games: 4, IsWinning: true},
				GamesBehind:    3.5,
				WinPercentage:  0.63,
			}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "record", Args: []string{"lal"}})

	assert.Equal(t, "LAL", gotTricode)
	want := "LAL ~ 34-20 (0.63) | 3.5 GB | 5th Conf. | 2nd Div. | " +
		"20-8 Home | 14-12 Away | 7-3 Last 10 | W4 Streak"
	assert.Equal(t, want, reply.Text)
}

func TestRecordCommand_Usage(t *testing.T) {
	b := newTestBot(&stubProvider{})

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "record"})
	assert.Equal(t, "Usage: record <TTT> (team tri-code)", reply.Text)

	reply = b.HandleCommand(context.Background(), bot.Invocation{Command: "record", Args: []string{"  "}})
	assert.Equal(t, "Usage: record <TTT> (team tri-code)", reply.Text)
}

func TestHandleCommand_CaseInsensitive(t *testing.T) {
	provider := &stubProvider{
		gameFoulsFn: func(ctx context.Context, tricode string) (*models.GameFouls, error) {
			return &models.GameFouls{
				HomeTricode: "LAL",
				AwayTricode: "BOS",
				HomeFouls:   17,
				AwayFouls:   12,
			}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "FOULS", Args: []string{"bos"}})

	assert.Equal(t, "BOS @ LAL Fouls ~  BOS: 12 PF | LAL: 17 PF", reply.Text)
}

func TestErrorReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown team",
			err:  &nba.UnknownTeamError{Code: "XXX"},
			want: "I could not find a team with that code",
		},
		{
			name: "not playing",
			err:  &nba.NotPlayingError{Tricode: "LAL"},
			want: "LAL is not currently playing",
		},
		{
			name: "network error",
			err:  &nba.NetworkError{URL: "https://data.nba.net/x", StatusCode: 503},
			want: "NBA.com did not respond, try again later",
		},
		{
			name: "parse error",
			err:  &nba.ParseError{URL: "https://data.nba.net/x", Err: errors.New("bad json")},
			want: "NBA.com sent back an unreadable response",
		},
		{
			name: "format error",
			err:  &nba.FormatError{Field: "links"},
			want: "NBA.com response was missing expected fields",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "Something went wrong handling that command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{
				teamRecordFn: func(ctx context.Context, tricode string) (*models.TeamRecord, error) {
					return nil, tt.err
				},
			}
			b := newTestBot(provider)

			reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "record", Args: []string{"LAL"}})
			assert.Equal(t, tt.want, reply.Text)
		})
	}
}

func TestStandingsCommand_UnknownDivision(t *testing.T) {
	provider := &stubProvider{
		divStandingsFn: func(ctx context.Context, division string) ([]models.TeamStanding, error) {
			return nil, nba.ErrUnknownDivision
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "standings", Args: []string{"midwest"}})

	want := "I could not find that conference or division. Valid values are: " +
		"east, west, southeast, atlantic, central, southwest, pacific, northwest."
	assert.Equal(t, want, reply.Text)
}

func TestGameLeadersCommand_NotPlaying(t *testing.T) {
	provider := &stubProvider{
		isPlayingFn: func(ctx context.Context, tricode string) (bool, error) {
			return false, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "gameleaders", Args: []string{"mia"}})

	assert.Equal(t, "MIA is not currently playing", reply.Text)
}

func TestGameLeadersCommand(t *testing.T) {
	provider := &stubProvider{
		isPlayingFn: func(ctx context.Context, tricode string) (bool, error) {
			return true, nil
		},
		gameLeadersFn: func(ctx context.Context, tricode string) (*models.GameLeaders, error) {
			return &models.GameLeaders{
				Home: models.TeamGameLeaders{
					Tricode: "LAL",
					Leaders: []models.GameLeaderStat{
						{
							Category: "points",
							Players:  []models.PlayerName{{FirstName: "Anthony", LastName: "Davis"}},
							Value:    "32",
						},
					},
				},
				Away: models.TeamGameLeaders{
					Tricode: "BOS",
					Leaders: []models.GameLeaderStat{
						{
							Category: "points",
							Players:  []models.PlayerName{{FirstName: "Jayson", LastName: "Tatum"}},
							Value:    "28",
						},
					},
				},
			}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "gameleaders", Args: []string{"LAL"}})

	assert.Equal(t, "BOS @ LAL Leaders ~  BOS: J. Tatum 28 PTS | LAL: A. Davis 32 PTS", reply.Text)
}

func TestStandingsCommand(t *testing.T) {
	standings := &models.ConferenceStandings{
		East: []models.TeamStanding{
			{Tricode: "BOS", GamesBehind: 0, Rank: 1},
			{Tricode: "MIA", GamesBehind: 2.5, Rank: 2},
		},
		West: []models.TeamStanding{
			{Tricode: "LAL", GamesBehind: 0, Rank: 1},
			{Tricode: "GSW", GamesBehind: 1.5, Rank: 2},
		},
	}

	westLine := "WEST: 1.LAL (--), 2.GSW (-1.5)"
	eastLine := "EAST: 1.BOS (--), 2.MIA (-2.5)"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"both conferences, west first", nil, westLine + "\n" + eastLine},
		{"east only", []string{"east"}, eastLine},
		{"west only", []string{"West"}, westLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{
				confStandingsFn: func(ctx context.Context) (*models.ConferenceStandings, error) {
					return standings, nil
				},
			}
			b := newTestBot(provider)

			reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "standings", Args: tt.args})
			assert.Equal(t, tt.want, reply.Text)
		})
	}
}

func TestStandingsCommand_Division(t *testing.T) {
	var gotDivision string
	provider := &stubProvider{
		divStandingsFn: func(ctx context.Context, division string) ([]models.TeamStanding, error) {
			gotDivision = division
			return []models.TeamStanding{{Tricode: "LAL", GamesBehind: 0, Rank: 1}}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "standings", Args: []string{"Pacific"}})

	assert.Equal(t, "pacific", gotDivision)
	assert.Equal(t, "PACIFIC: 1.LAL (--)", reply.Text)
}

func TestNuggetCommand(t *testing.T) {
	provider := &stubProvider{
		gameNuggetFn: func(ctx context.Context, tricode string) (*models.Game, error) {
			return &models.Game{
				HomeTricode: "LAL",
				AwayTricode: "BOS",
				Nugget:      "Davis posts 30-20 double-double",
			}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "nugget", Args: []string{"lal"}})
	assert.Equal(t, "BOS @ LAL ~ Davis posts 30-20 double-double", reply.Text)
}

func TestNuggetCommand_NothingPostedYet(t *testing.T) {
	provider := &stubProvider{
		gameNuggetFn: func(ctx context.Context, tricode string) (*models.Game, error) {
			return &models.Game{HomeTricode: "LAL", AwayTricode: "BOS"}, nil
		},
	}
	b := newTestBot(provider)

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "nugget", Args: []string{"LAL"}})
	assert.Equal(t, "No highlight posted for the LAL game yet", reply.Text)
}

func TestTeamsCommand(t *testing.T) {
	b := newTestBot(&stubProvider{teams: []string{"BOS", "LAL"}})

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "teams"})
	assert.Equal(t, "Team codes: BOS, LAL", reply.Text)
}

func TestLeadersCommand_Alias(t *testing.T) {
	calls := 0
	provider := &stubProvider{
		teamLeadersFn: func(ctx context.Context, tricode string) ([]models.CategoryLeader, error) {
			calls++
			return []models.CategoryLeader{
				{
					Category: "ppg",
					Player:   models.PlayerName{FirstName: "LeBron", LastName: "James"},
					Value:    "27.3",
				},
			}, nil
		},
	}
	b := newTestBot(provider)

	want := "LAL Leaders ~  L. James 27.3 PPG"

	reply := b.HandleCommand(context.Background(), bot.Invocation{Command: "leaders", Args: []string{"LAL"}})
	assert.Equal(t, want, reply.Text)

	reply = b.HandleCommand(context.Background(), bot.Invocation{Command: "teamleaders", Args: []string{"LAL"}})
	assert.Equal(t, want, reply.Text)

	assert.Equal(t, 2, calls)
}
