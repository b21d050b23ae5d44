package exporters

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

// WriteTable prints the leaderboard as fixed-width text for the terminal.
func WriteTable(w io.Writer, entries []leaderboarddomain.LeaderboardEntry) error {
	nameWidth := len(DisplayHeader[0])
	for _, e := range entries {
		if l := utf8.RuneCountInString(e.Name); l > nameWidth {
			nameWidth = l
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%4s  %-*s", "", nameWidth, DisplayHeader[0])
	for _, h := range DisplayHeader[1:] {
		fmt.Fprintf(&b, "  %*s", len(h), h)
	}
	b.WriteString("\n")

	for _, e := range entries {
		row := displayRow(e)
		fmt.Fprintf(&b, "%4d  %-*s", e.Rank, nameWidth, row[0])
		for i, v := range row[1:] {
			fmt.Fprintf(&b, "  %*s", len(DisplayHeader[i+1]), v)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
