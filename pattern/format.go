package pattern

import (
	"fmt"
	"strings"

	"github.com/peter-clark/polyphonic-rhythmic-contour/model"
)

var levels = []rune(" .:-=+*#")

// FormatProfile draws a profile as one character per step with a bar
// line every four steps, e.g. |#.:.|=.:.|.
func FormatProfile(profile model.Profile) string {
	var sb strings.Builder
	for i, v := range profile {
		if i%4 == 0 {
			sb.WriteRune('|')
		}
		idx := int(v * float64(len(levels)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		sb.WriteRune(levels[idx])
	}
	sb.WriteRune('|')
	return sb.String()
}

// FormatCounts prints one x/- line per channel, high channel on top.
func FormatCounts(counts model.ChannelCounts) string {
	var sb strings.Builder
	for c := model.NumChannels - 1; c >= 0; c-- {
		sb.WriteString(fmt.Sprintf("%-5s", model.Channel(c)))
		for i, row := range counts {
			if i%4 == 0 {
				sb.WriteRune('|')
			}
			switch {
			case row[c] == 0:
				sb.WriteRune('-')
			case row[c] == 1:
				sb.WriteRune('x')
			default:
				sb.WriteString(fmt.Sprintf("%d", int(row[c])%10))
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
