package format

import "fmt"

// mIRC text attribute control characters.
const (
	boldChar  = "\x02"
	colorChar = "\x03"
)

// mIRC color codes used by the replies.
const (
	colorBlack     = 1
	colorGreen     = 3
	colorRed       = 4
	colorPurple    = 6
	colorOrange    = 7
	colorYellow    = 8
	colorLightBlue = 11
)

func (f *Formatter) bold(s string) string {
	if f.style != IRC {
		return s
	}
	return boldChar + s + boldChar
}

// Clients consume up to two digits after the color introducer (and after
// the comma), so any code the payload follows directly is zero-padded.
func (f *Formatter) color(s string, fg int) string {
	if f.style != IRC {
		return s
	}
	return fmt.Sprintf("%s%02d%s%s", colorChar, fg, s, colorChar)
}

func (f *Formatter) colorOn(s string, fg, bg int) string {
	if f.style != IRC {
		return s
	}
	// The comma terminates the foreground field, so only the background
	// needs the padding.
	return fmt.Sprintf("%s%d,%02d%s%s", colorChar, fg, bg, s, colorChar)
}

func (f *Formatter) red(s string) string    { return f.color(s, colorRed) }
func (f *Formatter) green(s string) string  { return f.color(s, colorGreen) }
func (f *Formatter) orange(s string) string { return f.color(s, colorOrange) }
func (f *Formatter) purple(s string) string { return f.color(s, colorPurple) }

// Light blue and yellow sit on a black background so they stay readable
// on light client themes.
func (f *Formatter) blue(s string) string   { return f.colorOn(s, colorLightBlue, colorBlack) }
func (f *Formatter) yellow(s string) string { return f.colorOn(s, colorYellow, colorBlack) }

// Home sides render orange, away sides light blue, everywhere they appear.
func (f *Formatter) highlightHome(s string) string { return f.orange(s) }
func (f *Formatter) highlightAway(s string) string { return f.blue(s) }
