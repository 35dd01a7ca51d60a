package bot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/santigl/NBAStats/internal/format"
	"github.com/santigl/NBAStats/internal/nba"
	"github.com/santigl/NBAStats/pkg/contracts"
)

// Invocation is one chat command as delivered by the host framework.
type Invocation struct {
	ID      string
	Command string
	Args    []string
	Channel string
	User    string
}

// Reply is the single-line answer sent back to the channel.
type Reply struct {
	Text string
}

type handlerFunc func(ctx context.Context, inv Invocation) (string, error)

// Bot dispatches chat commands to the stats provider and renders replies.
// Provider errors never escape: each kind maps to a short channel message.
type Bot struct {
	provider  contracts.StatsProvider
	formatter *format.Formatter
	logger    *logrus.Logger
	commands  map[string]handlerFunc
}

// New creates a bot with the full command set registered.
func New(provider contracts.StatsProvider, formatter *format.Formatter, logger *logrus.Logger) *Bot {
	if logger == nil {
		logger = logrus.New()
	}

	b := &Bot{
		provider:  provider,
		formatter: formatter,
		logger:    logger,
	}
	b.commands = map[string]handlerFunc{
		"record":      b.record,
		"leaders":     b.teamLeaders,
		"teamleaders": b.teamLeaders, // alias
		"gameleaders": b.gameLeaders,
		"standings":   b.standings,
		"fouls":       b.fouls,
		"nugget":      b.nugget,
		"teams":       b.teams,
	}
	return b
}

// CommandNames returns the registered command names, sorted.
func (b *Bot) CommandNames() []string {
	names := make([]string, 0, len(b.commands))
	for name := range b.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleCommand runs one invocation to completion and always produces a
// reply. One blocking fetch pipeline per command, nothing retried.
func (b *Bot) HandleCommand(ctx context.Context, inv Invocation) Reply {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	log := b.logger.WithFields(logrus.Fields{
		"invocation_id": inv.ID,
		"command":       inv.Command,
	})

	handler, ok := b.commands[strings.ToLower(inv.Command)]
	if !ok {
		log.Warn("unknown command")
		return Reply{Text: fmt.Sprintf("Unknown command %q. Available: %s",
			inv.Command, strings.Join(b.CommandNames(), ", "))}
	}

	start := time.Now()
	text, err := handler(ctx, inv)
	if err != nil {
		log.WithError(err).Warn("command failed")
		return Reply{Text: b.errorText(err)}
	}

	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("command handled")
	return Reply{Text: text}
}

// errorText maps a provider error to the channel message for it.
func (b *Bot) errorText(err error) string {
	var (
		usage       *usageError
		unknownTeam *nba.UnknownTeamError
		notPlaying  *nba.NotPlayingError
		netErr      *nba.NetworkError
		parseErr    *nba.ParseError
		formatErr   *nba.FormatError
	)

	switch {
	case errors.As(err, &usage):
		return "Usage: " + usage.usage
	case errors.As(err, &unknownTeam):
		return "I could not find a team with that code"
	case errors.As(err, &notPlaying):
		return fmt.Sprintf("%s is not currently playing", notPlaying.Tricode)
	case errors.Is(err, nba.ErrUnknownDivision), errors.Is(err, nba.ErrUnknownConference):
		return fmt.Sprintf("I could not find that conference or division. Valid values are: %s.",
			strings.Join(b.standingsArgs(), ", "))
	case errors.As(err, &netErr):
		return "NBA.com did not respond, try again later"
	case errors.As(err, &parseErr):
		return "NBA.com sent back an unreadable response"
	case errors.As(err, &formatErr):
		return "NBA.com response was missing expected fields"
	}
	return "Something went wrong handling that command"
}

// standingsArgs lists every value the standings command accepts.
func (b *Bot) standingsArgs() []string {
	args := b.provider.Conferences()
	divisions, err := b.provider.Divisions("")
	if err == nil {
		args = append(args, divisions...)
	}
	return args
}

// usageError reports a malformed invocation.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}
