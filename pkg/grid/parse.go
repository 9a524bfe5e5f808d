package grid

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ParseBitGrid builds a grid from line-oriented text. Everything from '#'
// to end of line is a comment, and lines that are blank after trimming are
// skipped. Each remaining line is one row, top to bottom; a rune contained
// in markers sets the cell at its column. The grid is as wide as the
// longest row, and shorter rows leave their trailing cells clear.
func ParseBitGrid(text, markers string) (*BitGrid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, errors.New("grid: pattern has no rows")
	}

	w := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}

	g := NewBitGrid(w, len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if strings.ContainsRune(markers, r) {
				g.Set(x, y, 0, true)
			}
			x++
		}
	}
	return g, nil
}
