package exporters

import (
	"fmt"
	"io"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the exported leaderboard.
const SheetName = "Leaderboard"

// WriteXLSX writes the leaderboard as a single-sheet workbook: a "#" rank
// column followed by the display columns, header in bold.
func WriteXLSX(w io.Writer, entries []leaderboarddomain.LeaderboardEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(DisplayHeader)+1)
	header = append(header, "#")
	for _, h := range DisplayHeader {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Rank,
			e.Name,
			e.MatchesPlayed,
			e.MatchesWon,
			e.MatchesLost,
			e.GamesPlayed,
			e.GamesWon,
			e.GamesLost,
		}
		if err := f.SetSheetRow(SheetName, axis, &row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", e.Name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
