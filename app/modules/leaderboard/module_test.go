package leaderboard

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/pingpong-leaderboard/config"
	"github.com/stretchr/testify/require"
)

const export = "Player 1,Player 2,Game 1 Score (P1),Game 2 Score (P1),Game 3 Score (P1),Game 1 Score (P2),Game 2 Score (P2),Game 3 Score (P2),Created,Sprint\n" +
	"Ann,Ben,11,11,2,3,4,11,,\n"

type recordingService struct {
	runs   []leaderboardservice.RunRequest
	cleans []leaderboardservice.CleanRequest
}

func (r *recordingService) Run(_ context.Context, req leaderboardservice.RunRequest) (*leaderboardservice.RunResult, error) {
	r.runs = append(r.runs, req)
	return &leaderboardservice.RunResult{}, nil
}

func (r *recordingService) Clean(_ context.Context, req leaderboardservice.CleanRequest) error {
	r.cleans = append(r.cleans, req)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestModule_CalculateFillsConfiguredDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Leaderboard.XLSXFile = "standings.xlsx"
	cfg.Chart.Width = 1000

	svc := &recordingService{}
	m := NewLeaderboardModule(cfg, discardLogger(), strings.NewReader(""), io.Discard, false)
	m.LeaderboardService = svc

	_, err := m.Calculate(context.Background(), leaderboardservice.RunRequest{
		InputPath: "round.csv",
		HTMLFile:  "custom.html",
	})
	require.NoError(t, err)
	require.Len(t, svc.runs, 1)

	got := svc.runs[0]
	require.Equal(t, "round.csv", got.InputPath)
	require.Equal(t, []string{"Player", "Game"}, got.RequiredPrefixes)
	require.Equal(t, "output.csv", got.OutputFile)
	require.Equal(t, "custom.html", got.HTMLFile)
	require.Equal(t, "standings.xlsx", got.XLSXFile)
	require.Empty(t, got.ChartFile)
	require.Equal(t, 1000, got.Chart.Width)
	require.Equal(t, 400, got.Chart.Height)
}

func TestModule_Clean(t *testing.T) {
	cfg := config.Default()
	cfg.Leaderboard.RequiredPrefixes = []string{"Player"}

	svc := &recordingService{}
	m := NewLeaderboardModule(cfg, discardLogger(), nil, io.Discard, true)
	m.LeaderboardService = svc

	require.NoError(t, m.Clean(context.Background(), "in.csv", "out.csv"))
	require.Equal(t, []leaderboardservice.CleanRequest{
		{InputPath: "in.csv", OutputPath: "out.csv", RequiredPrefixes: []string{"Player"}},
	}, svc.cleans)
}

func TestModule_CalculateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "round.csv"), []byte(export), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "output.csv"), []byte("old\n"), 0o644))

	m := NewLeaderboardModule(config.Default(), discardLogger(), nil, io.Discard, true)
	result, err := m.Calculate(context.Background(), leaderboardservice.RunRequest{
		InputPath: filepath.Join(dir, "round.csv"),
	})
	require.NoError(t, err)
	require.Len(t, result.Leaderboard, 2)
	require.Equal(t, "Ann", result.Leaderboard[0].Name)
	require.Equal(t, filepath.Join(dir, "output.csv"), result.OutputPath)
	require.FileExists(t, filepath.Join(dir, "test.html"))
}
