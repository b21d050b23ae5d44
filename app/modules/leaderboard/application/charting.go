package leaderboardservice

import (
	"bytes"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// maxChartBars caps the chart at the top of the table; the full ranking is in
// the CSV and HTML outputs.
const maxChartBars = 20

// ChartPalette holds the colors used when rendering charts.
type ChartPalette struct {
	Background drawing.Color
	PrimaryBar drawing.Color
	AccentLine drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette is a dark green table-tennis palette.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("0b1f17"),
	PrimaryBar: drawing.ColorFromHex("2d6a4f"),
	AccentLine: drawing.ColorFromHex("e9c46a"),
	TextColor:  drawing.ColorFromHex("f1faee"),
}

// ChartOptions sizes the rendered chart. Zero values fall back to 800x400.
type ChartOptions struct {
	Width   int
	Height  int
	Palette *ChartPalette
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	if o.Palette == nil {
		p := DefaultPalette
		o.Palette = &p
	}
	return o
}

// GenerateStandingsChart produces a PNG bar chart of matches won, in leaderboard order.
func GenerateStandingsChart(entries []leaderboarddomain.LeaderboardEntry, opts ChartOptions) ([]byte, error) {
	opts = opts.withDefaults()
	palette := *opts.Palette

	if len(entries) > maxChartBars {
		entries = entries[:maxChartBars]
	}

	maxWins := 0
	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: e.Name,
			Value: float64(e.MatchesWon),
			Style: chart.Style{
				FillColor:   palette.PrimaryBar,
				StrokeColor: palette.AccentLine,
				StrokeWidth: 1,
			},
		}
		maxWins = max(maxWins, e.MatchesWon)
	}

	// go-chart cannot scale an all-zero series.
	if maxWins == 0 {
		return renderNoDataPlaceholder(palette)
	}

	barWidth := opts.Width / (len(bars) * 2)
	if barWidth < 8 {
		barWidth = 8
	}

	graph := chart.BarChart{
		Title:      "Matches Won",
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		BarSpacing: barWidth,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxWins)},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a PNG canvas;
// chart.Chart refuses to render without a series.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No matches won yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
