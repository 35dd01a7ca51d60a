package contracts

import (
	"context"

	"github.com/santigl/NBAStats/pkg/models"
)

// StatsProvider is the interface the command layer consumes. The stats
// service implements it against NBA.com; tests swap in stubs.
type StatsProvider interface {
	// Static vocabulary
	Teams() []string
	StatCategories() []string
	Conferences() []string
	Divisions(conference string) ([]string, error) // "" returns every division

	// Season stats
	TeamRecord(ctx context.Context, tricode string) (*models.TeamRecord, error)
	TeamLeaders(ctx context.Context, tricode string) ([]models.CategoryLeader, error)
	ConferenceStandings(ctx context.Context) (*models.ConferenceStandings, error)
	DivisionStandings(ctx context.Context, division string) ([]models.TeamStanding, error)

	// Live games
	IsTeamPlaying(ctx context.Context, tricode string) (bool, error)
	GameLeaders(ctx context.Context, tricode string) (*models.GameLeaders, error)
	GameFouls(ctx context.Context, tricode string) (*models.GameFouls, error)
	GameNugget(ctx context.Context, tricode string) (*models.Game, error)
}
