package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorIndexed
	colorRGB
)

// Color is a terminal color: the terminal default, a palette index or 24-bit RGB
// The zero value is the terminal default (reset)
type Color struct {
	kind    colorKind
	R, G, B uint8 // Palette index is stored in R
}

// ColorReset leaves the terminal default color in place
var ColorReset = Color{}

// Basic 16-color palette, indices match SGR 30-37/90-97
var (
	ColorBlack        = Indexed(0)
	ColorRed          = Indexed(1)
	ColorGreen        = Indexed(2)
	ColorYellow       = Indexed(3)
	ColorBlue         = Indexed(4)
	ColorMagenta      = Indexed(5)
	ColorCyan         = Indexed(6)
	ColorGray         = Indexed(7)
	ColorDarkGray     = Indexed(8)
	ColorLightRed     = Indexed(9)
	ColorLightGreen   = Indexed(10)
	ColorLightYellow  = Indexed(11)
	ColorLightBlue    = Indexed(12)
	ColorLightMagenta = Indexed(13)
	ColorLightCyan    = Indexed(14)
	ColorWhite        = Indexed(15)
)

// Indexed returns a palette color
func Indexed(n uint8) Color {
	return Color{kind: colorIndexed, R: n}
}

// NewRGB returns a 24-bit color
func NewRGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether the color leaves the terminal default in place
func (c Color) IsDefault() bool {
	return c.kind == colorDefault
}

// Index returns the palette index for indexed colors
func (c Color) Index() (uint8, bool) {
	return c.R, c.kind == colorIndexed
}

// RGB returns the components of a 24-bit color
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.R, c.G, c.B, c.kind == colorRGB
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube level 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
// Grayscale ramp 232-255 is preferred when it is closer than the color cube
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]
	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	gray := (int(r) + int(g) + int(b)) / 3
	if gray >= 4 && gray <= 243 {
		grayIdx := 232 + (gray-8+5)/10
		if grayIdx < 232 {
			grayIdx = 232
		}
		if grayIdx > 255 {
			grayIdx = 255
		}
		level := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}

// detectColorMode checks well-known terminal variables first, then asks termenv about w
func detectColorMode(w io.Writer) ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	if termenv.NewOutput(w).EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}
