package core

// Color is a foreground color for a screen cell. The platform layer maps it
// to an ANSI 256-color code.
type Color uint8

// Palette used by the lane runner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_yellow": ColorBrightYellow,
	"bright_cyan":   ColorBrightCyan,
	"orange":        ColorOrange,
	"gray":          ColorGray,
}

// ParseColor looks up a color by its config name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
