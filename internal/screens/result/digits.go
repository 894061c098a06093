package result

import (
	"strconv"
	"strings"
)

// bigDigits is a three-row block font for the counter.
var bigDigits = map[rune][3]string{
	'0': {"█▀█", "█ █", "█▄█"},
	'1': {" ▀█", "  █", "  █"},
	'2': {"▀▀█", "█▀▀", "█▄▄"},
	'3': {"▀▀█", " ▀█", "▄▄█"},
	'4': {"█ █", "▀▀█", "  █"},
	'5': {"█▀▀", "▀▀█", "▄▄█"},
	'6': {"█▀▀", "█▀█", "█▄█"},
	'7': {"▀▀█", "  █", "  █"},
	'8': {"█▀█", "█▀█", "█▄█"},
	'9': {"█▀█", "▀▀█", "▄▄█"},
	'-': {"   ", "▀▀▀", "   "},
}

// renderBig draws n in the block font.
func renderBig(n int) string {
	var rows [3][]string
	for _, r := range strconv.Itoa(n) {
		glyph := bigDigits[r]
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
