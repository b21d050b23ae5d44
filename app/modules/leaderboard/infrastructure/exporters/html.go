package exporters

import (
	"html/template"
	"io"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
)

var htmlTable = template.Must(template.New("leaderboard").Parse(`<table border="1" class="dataframe">
  <thead>
    <tr style="text-align: center;">
      <th></th>
{{- range .Header}}
      <th>{{.}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <th>{{.Rank}}</th>
{{- range .Cells}}
      <td style="text-align: center;">{{.}}</td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>
`))

type htmlRow struct {
	Rank  int
	Cells []string
}

// WriteHTML renders the leaderboard as an HTML table fragment with a 1-based
// index column and centered cells.
func WriteHTML(w io.Writer, entries []leaderboarddomain.LeaderboardEntry) error {
	rows := make([]htmlRow, len(entries))
	for i, e := range entries {
		rows[i] = htmlRow{Rank: e.Rank, Cells: displayRow(e)}
	}
	return htmlTable.Execute(w, struct {
		Header []string
		Rows   []htmlRow
	}{
		Header: DisplayHeader,
		Rows:   rows,
	})
}
