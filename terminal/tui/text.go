package tui

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Alignment positions a line horizontally
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Offset returns the starting column for a line of lineW cells in a width of areaW
func (a Alignment) Offset(lineW, areaW int) int {
	switch a {
	case AlignCenter:
		return max((areaW-lineW)/2, 0)
	case AlignRight:
		return max(areaW-lineW, 0)
	}
	return 0
}

// StringWidth returns display width in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if its display width exceeds maxW
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, "…")
}

// SkipColumns drops the first n display columns of s
// A wide rune cut in half is replaced by a space
func SkipColumns(s string, n int) string {
	if n <= 0 {
		return s
	}
	col := 0
	for i, ch := range s {
		if col >= n {
			if col > n {
				return " " + s[i:]
			}
			return s[i:]
		}
		col += runewidth.RuneWidth(ch)
	}
	if col > n {
		return " "
	}
	return ""
}

// WrapText wraps a single line at word boundaries to fit width
// With trim, whitespace at the start of wrapped lines is dropped
// Words wider than width are split
func WrapText(s string, width int, trim bool) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	// Pending word and the whitespace in front of it
	var word, gap strings.Builder
	wordW, gapW := 0, 0

	emit := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	flushWord := func() {
		if wordW == 0 && gapW == 0 {
			return
		}
		if lineW+gapW+wordW > width && lineW > 0 {
			emit()
			if trim {
				gap.Reset()
				gapW = 0
			}
		}
		for _, ch := range gap.String() + word.String() {
			cw := runewidth.RuneWidth(ch)
			if lineW+cw > width {
				emit()
				if trim && unicode.IsSpace(ch) {
					continue
				}
			}
			line.WriteRune(ch)
			lineW += cw
		}
		word.Reset()
		gap.Reset()
		wordW, gapW = 0, 0
	}

	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if unicode.IsSpace(ch) {
			if wordW > 0 {
				flushWord()
			}
			gap.WriteRune(ch)
			gapW += cw
			continue
		}
		word.WriteRune(ch)
		wordW += cw
	}
	flushWord()

	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
