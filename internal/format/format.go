package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/santigl/NBAStats/pkg/models"
)

// Style selects the text attributes applied to replies.
type Style int

const (
	// Plain renders uncolored text.
	Plain Style = iota
	// IRC wraps fields in mIRC bold and color codes.
	IRC
)

// Formatter renders stat results as single-line chat messages.
type Formatter struct {
	style Style
}

// New creates a formatter for the given style.
func New(style Style) *Formatter {
	return &Formatter{style: style}
}

// Stat categories rendered as percentages rather than raw decimals.
var percentCategories = map[string]bool{"fgp": true, "ftp": true, "tpp": true}

// TeamRecord renders the season record line.
//
//	LAL ~ 34-20 (0.63) | 3.5 GB | 5th Conf. | 2nd Div. | 20-8 Home | ...
func (f *Formatter) TeamRecord(tricode string, rec *models.TeamRecord) string {
	title := f.bold(tricode + " ~")

	body := fmt.Sprintf("%s (%s) | %s GB | %s Conf. | %s Div. | %s Home | %s Away | %s Last 10 | %s Streak",
		f.bold(f.winsLosses(rec.Total)),
		floatString(rec.WinPercentage),
		shortFloat(rec.GamesBehind),
		f.conferenceRank(rec.ConferenceRank),
		f.divisionRank(rec.DivisionRank),
		f.winsLosses(rec.Home),
		f.winsLosses(rec.Away),
		f.winsLosses(rec.LastTen),
		f.streak(rec.Streak))

	return title + " " + body
}

// TeamLeaders renders the season team-leaders line, one entry per stat
// category.
func (f *Formatter) TeamLeaders(tricode string, leaders []models.CategoryLeader) string {
	title := f.bold(tricode + " Leaders ~ ")

	parts := make([]string, 0, len(leaders))
	for _, l := range leaders {
		parts = append(parts, playerShortName(l.Player)+" "+f.categoryStat(l.Category, l.Value))
	}

	return title + " " + strings.Join(parts, " | ")
}

// GameLeaders renders the live game-leaders line, away side first.
func (f *Formatter) GameLeaders(gl *models.GameLeaders) string {
	awayName := f.highlightAway(gl.Away.Tricode)
	homeName := f.highlightHome(gl.Home.Tricode)

	finalFlag := ""
	if gl.Final {
		finalFlag = f.red("(Final) ")
	}

	title := f.bold(fmt.Sprintf("%s @ %s Leaders %s~  ", awayName, homeName, finalFlag))

	body := fmt.Sprintf("%s: %s | %s: %s",
		f.bold(awayName),
		f.gameLeaderStats(gl.Away.Leaders, false),
		f.bold(homeName),
		f.gameLeaderStats(gl.Home.Leaders, true))

	return title + body
}

// GameFouls renders the live team-fouls line, away side first.
func (f *Formatter) GameFouls(gf *models.GameFouls) string {
	awayName := f.highlightAway(gf.AwayTricode)
	homeName := f.highlightHome(gf.HomeTricode)

	finalFlag := ""
	if gf.Final {
		finalFlag = f.red("(Final) ")
	}

	title := f.bold(fmt.Sprintf("%s @ %s Fouls %s~  ", awayName, homeName, finalFlag))

	body := fmt.Sprintf("%s: %s | %s: %s",
		f.bold(awayName),
		f.highlightAway(strconv.Itoa(gf.AwayFouls)+" PF"),
		f.bold(homeName),
		f.highlightHome(strconv.Itoa(gf.HomeFouls)+" PF"))

	return title + body
}

// Standings renders one ranked table as "LABEL: 1.AAA (--), 2.BBB (-2.5), ...".
func (f *Formatter) Standings(label string, rows []models.TeamStanding) string {
	items := make([]string, 0, len(rows))
	for _, t := range rows {
		gb := formatGamesBehind(-1 * t.GamesBehind)
		items = append(items, fmt.Sprintf("%d.%s (%s)", t.Rank, f.bold(t.Tricode), gb))
	}
	return fmt.Sprintf("%s: %s", f.bold(strings.ToUpper(label)), strings.Join(items, ", "))
}

// Nugget renders the game highlight line.
func (f *Formatter) Nugget(game *models.Game) string {
	awayName := f.highlightAway(game.AwayTricode)
	homeName := f.highlightHome(game.HomeTricode)

	title := f.bold(fmt.Sprintf("%s @ %s ~", awayName, homeName))
	return title + " " + game.Nugget
}

// gameLeaderStats renders one side's category leads, tied players joined
// by commas.
func (f *Formatter) gameLeaderStats(leaders []models.GameLeaderStat, home bool) string {
	parts := make([]string, 0, len(leaders))
	for _, l := range leaders {
		names := make([]string, 0, len(l.Players))
		for _, p := range l.Players {
			names = append(names, playerShortName(p))
		}

		stat := l.Value + " " + shortCategoryName(l.Category)
		if home {
			stat = f.highlightHome(stat)
		} else {
			stat = f.highlightAway(stat)
		}

		parts = append(parts, strings.Join(names, ", ")+" "+stat)
	}
	return strings.Join(parts, " | ")
}

// categoryStat renders "value CATEGORY" with the category's color;
// percentage categories are converted from their decimal form.
func (f *Formatter) categoryStat(category, value string) string {
	upper := strings.ToUpper(category)

	if percentCategories[category] {
		return f.blue(decimalToPercentage(value) + " " + upper)
	}

	s := value + " " + upper
	switch category {
	case "ppg", "trpg", "apg":
		return f.green(s)
	case "bpg", "spg":
		return f.purple(s)
	case "tpg", "pfpg":
		return f.red(s)
	}
	return f.orange(s)
}

// winsLosses renders "W-L", green when winning, red when losing, yellow
// when even.
func (f *Formatter) winsLosses(r models.Record) string {
	s := fmt.Sprintf("%d-%d", r.Wins, r.Losses)
	switch {
	case r.Wins > r.Losses:
		return f.green(s)
	case r.Losses > r.Wins:
		return f.red(s)
	}
	return f.yellow(s)
}

// streak renders "W4"/"L2", empty when there is no streak.
func (f *Formatter) streak(st models.Streak) string {
	if st.Games == 0 {
		return ""
	}
	if st.IsWinning {
		return f.green(fmt.Sprintf("W%d", st.Games))
	}
	return f.red(fmt.Sprintf("L%d", st.Games))
}

// conferenceRank renders the rank ordinal, green inside the playoff cut,
// red below it.
func (f *Formatter) conferenceRank(rank int) string {
	s := ordinal(rank)
	if rank <= 8 {
		return f.green(s)
	}
	return f.red(s)
}

func (f *Formatter) divisionRank(rank int) string {
	return ordinal(rank)
}

// shortCategoryName maps a box-score category to its stat abbreviation.
func shortCategoryName(category string) string {
	switch category {
	case "points":
		return "PTS"
	case "rebounds":
		return "REB"
	case "assists":
		return "AST"
	}
	return ""
}

// playerShortName renders "I. LastName".
func playerShortName(p models.PlayerName) string {
	if p.FirstName == "" {
		return p.LastName
	}
	r, _ := utf8.DecodeRuneInString(p.FirstName)
	return string(r) + ". " + p.LastName
}

// ordinal spells 1st through 19th; higher ranks stay plain digits.
func ordinal(n int) string {
	if n > 19 {
		return strconv.Itoa(n)
	}
	suffix := "th"
	switch n {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// formatGamesBehind renders an already-negated games-behind value padded
// to the standings column width. The leader shows "--".
func formatGamesBehind(v float64) string {
	if v == 0 {
		return "--"
	}
	return fmt.Sprintf("%4s", floatString(v))
}

// decimalToPercentage renders a 0..1 decimal string as a percentage with
// one decimal place ("0.475" -> "47.5%"). Values were validated numeric
// at extraction.
func decimalToPercentage(value string) string {
	p, _ := strconv.ParseFloat(value, 64)
	return fmt.Sprintf("%.1f%%", p*100)
}

// floatString renders a float in its shortest decimal form, always keeping
// a decimal point ("0.63", "-3.5", "2.0").
func floatString(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// shortFloat renders a float in its shortest form, dropping the decimal
// point for whole numbers ("3.5", "0", "2").
func shortFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
