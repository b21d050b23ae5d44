package leaderboardservice

import (
	"bytes"
	"image/png"
	"testing"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/stretchr/testify/require"
)

func chartEntries(wins ...int) []leaderboarddomain.LeaderboardEntry {
	names := []string{"Ann", "Ben", "Cy", "Dee", "Eve"}
	entries := make([]leaderboarddomain.LeaderboardEntry, len(wins))
	for i, w := range wins {
		entries[i] = leaderboarddomain.LeaderboardEntry{
			Rank: i + 1,
			PlayerStanding: leaderboarddomain.PlayerStanding{
				Name:          names[i%len(names)],
				Group:         "1",
				MatchesWon:    w,
				MatchesPlayed: w,
			},
		}
	}
	return entries
}

func TestGenerateStandingsChart(t *testing.T) {
	tests := []struct {
		name       string
		entries    []leaderboarddomain.LeaderboardEntry
		opts       ChartOptions
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "default size",
			entries:    chartEntries(5, 3, 1),
			wantWidth:  800,
			wantHeight: 400,
		},
		{
			name:       "custom size",
			entries:    chartEntries(2, 1),
			opts:       ChartOptions{Width: 1024, Height: 600},
			wantWidth:  1024,
			wantHeight: 600,
		},
		{
			name:       "everyone on the same wins",
			entries:    chartEntries(4, 4, 4, 4),
			wantWidth:  800,
			wantHeight: 400,
		},
		{
			name:       "empty leaderboard renders placeholder",
			entries:    nil,
			wantWidth:  400,
			wantHeight: 200,
		},
		{
			name:       "nobody has won renders placeholder",
			entries:    chartEntries(0, 0, 0),
			wantWidth:  400,
			wantHeight: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateStandingsChart(tt.entries, tt.opts)
			require.NoError(t, err)

			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, tt.wantWidth, cfg.Width)
			require.Equal(t, tt.wantHeight, cfg.Height)
		})
	}
}

func TestGenerateStandingsChart_CapsBars(t *testing.T) {
	wins := make([]int, maxChartBars+15)
	for i := range wins {
		wins[i] = len(wins) - i
	}

	data, err := GenerateStandingsChart(chartEntries(wins...), ChartOptions{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestChartOptions_WithDefaults(t *testing.T) {
	opts := ChartOptions{}.withDefaults()
	require.Equal(t, 800, opts.Width)
	require.Equal(t, 400, opts.Height)
	require.NotNil(t, opts.Palette)
	require.Equal(t, DefaultPalette, *opts.Palette)

	custom := ChartPalette{}
	opts = ChartOptions{Width: 300, Height: 250, Palette: &custom}.withDefaults()
	require.Equal(t, 300, opts.Width)
	require.Same(t, &custom, opts.Palette)
}
