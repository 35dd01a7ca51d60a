package bot

import (
	"context"
	"fmt"
	"strings"
)

// teamArg returns the command's team tricode argument.
func teamArg(inv Invocation) (string, error) {
	if len(inv.Args) < 1 || strings.TrimSpace(inv.Args[0]) == "" {
		return "", &usageError{usage: strings.ToLower(inv.Command) + " <TTT> (team tri-code)"}
	}
	return strings.ToUpper(strings.TrimSpace(inv.Args[0])), nil
}

// record replies with the team's season record line.
func (b *Bot) record(ctx context.Context, inv Invocation) (string, error) {
	code, err := teamArg(inv)
	if err != nil {
		return "", err
	}

	rec, err := b.provider.TeamRecord(ctx, code)
	if err != nil {
		return "", err
	}
	return b.formatter.TeamRecord(code, rec), nil
}

// teamLeaders replies with the team's season leaders line.
func (b *Bot) teamLeaders(ctx context.Context, inv Invocation) (string, error) {
	code, err := teamArg(inv)
	if err != nil {
		return "", err
	}

	leaders, err := b.provider.TeamLeaders(ctx, code)
	if err != nil {
		return "", err
	}
	return b.formatter.TeamLeaders(code, leaders), nil
}

// gameLeaders replies with the live game-leaders line for a team that has
// a game in progress.
func (b *Bot) gameLeaders(ctx context.Context, inv Invocation) (string, error) {
	code, err := teamArg(inv)
	if err != nil {
		return "", err
	}

	playing, err := b.provider.IsTeamPlaying(ctx, code)
	if err != nil {
		return "", err
	}
	if !playing {
		return fmt.Sprintf("%s is not currently playing", code), nil
	}

	leaders, err := b.provider.GameLeaders(ctx, code)
	if err != nil {
		return "", err
	}
	return b.formatter.GameLeaders(leaders), nil
}

// fouls replies with both sides' foul totals for a live game.
func (b *Bot) fouls(ctx context.Context, inv Invocation) (string, error) {
	code, err := teamArg(inv)
	if err != nil {
		return "", err
	}

	gameFouls, err := b.provider.GameFouls(ctx, code)
	if err != nil {
		return "", err
	}
	return b.formatter.GameFouls(gameFouls), nil
}

// nugget replies with the highlight text of a live game.
func (b *Bot) nugget(ctx context.Context, inv Invocation) (string, error) {
	code, err := teamArg(inv)
	if err != nil {
		return "", err
	}

	game, err := b.provider.GameNugget(ctx, code)
	if err != nil {
		return "", err
	}
	if game.Nugget == "" {
		return fmt.Sprintf("No highlight posted for the %s game yet", code), nil
	}
	return b.formatter.Nugget(game), nil
}

// standings replies with conference standings, or one division's table
// when a division is named. Without an argument both conferences are
// returned, west first, one line each.
func (b *Bot) standings(ctx context.Context, inv Invocation) (string, error) {
	arg := ""
	if len(inv.Args) > 0 {
		arg = strings.ToLower(strings.TrimSpace(inv.Args[0]))
	}

	if arg == "" || arg == "east" || arg == "west" {
		standings, err := b.provider.ConferenceStandings(ctx)
		if err != nil {
			return "", err
		}

		var lines []string
		if arg == "" || arg == "west" {
			lines = append(lines, b.formatter.Standings("west", standings.West))
		}
		if arg == "" || arg == "east" {
			lines = append(lines, b.formatter.Standings("east", standings.East))
		}
		return strings.Join(lines, "\n"), nil
	}

	rows, err := b.provider.DivisionStandings(ctx, arg)
	if err != nil {
		return "", err
	}
	return b.formatter.Standings(arg, rows), nil
}

// teams replies with the valid team codes.
func (b *Bot) teams(ctx context.Context, inv Invocation) (string, error) {
	return "Team codes: " + strings.Join(b.provider.Teams(), ", "), nil
}
