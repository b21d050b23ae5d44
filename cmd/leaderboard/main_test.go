package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const export = "Summary,Player 1,Player 2,Created,Game 1 Score (P1),Game 2 Score (P1),Game 3 Score (P1),Game 1 Score (P2),Game 2 Score (P2),Game 3 Score (P2),Sprint\n" +
	"a,Alice,Bob,,11,11,11,1,2,3,R1\n" +
	",,,,,,,,,,R1\n"

type cliRun struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) *cliRun {
	t.Helper()
	r := &cliRun{}
	app := newApp(strings.NewReader(stdin), &r.stdout, &r.stderr)
	r.err = app.RunContext(context.Background(), append([]string{"leaderboard"}, args...))
	return r
}

func setup(t *testing.T) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "round.csv"), []byte(export), 0o644))
	return dir, filepath.Join(dir, "no-config.yaml")
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		args func(dir, cfg string) []string
	}{
		{
			name: "default action",
			args: func(dir, cfg string) []string {
				return []string{"-c", cfg, "-i", filepath.Join(dir, "round.csv")}
			},
		},
		{
			name: "calculate command with base folder",
			args: func(dir, cfg string) []string {
				return []string{"calculate", "--config", cfg, "--base_folder", dir, "--input_csv", "round.csv"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cfg := setup(t)
			r := runCLI(t, "", tt.args(dir, cfg)...)
			require.NoError(t, r.err)

			require.FileExists(t, filepath.Join(dir, "output.csv"))
			require.FileExists(t, filepath.Join(dir, "test.html"))
			require.NoFileExists(t, filepath.Join(dir, "cleaned_round.csv"))
			require.Contains(t, r.stdout.String(), "Alice")
			require.Contains(t, r.stderr.String(), "Results written to file")
		})
	}
}

func TestCalculate_ExtraOutputs(t *testing.T) {
	dir, cfg := setup(t)
	r := runCLI(t, "", "-c", cfg, "-i", filepath.Join(dir, "round.csv"),
		"-o", "standings.csv", "--html", "standings.html", "--xlsx", "standings.xlsx", "--chart", "standings.png")
	require.NoError(t, r.err)

	for _, name := range []string{"standings.csv", "standings.html", "standings.xlsx", "standings.png"} {
		require.FileExists(t, filepath.Join(dir, name))
	}
	require.NoFileExists(t, filepath.Join(dir, "output.csv"))
}

func TestCalculate_MissingInputExitsCleanly(t *testing.T) {
	dir, cfg := setup(t)
	r := runCLI(t, "", "-c", cfg, "-i", filepath.Join(dir, "nope.csv"))
	require.NoError(t, r.err)
	require.Contains(t, r.stderr.String(), "File not found")
	require.NoFileExists(t, filepath.Join(dir, "output.csv"))
}

func TestCalculate_RequiresInput(t *testing.T) {
	_, cfg := setup(t)
	r := runCLI(t, "", "-c", cfg)
	require.ErrorContains(t, r.err, "input_csv")
}

func TestCalculate_Overwrite(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		extra       []string
		overwritten bool
	}{
		{name: "declined", stdin: "n\n", overwritten: false},
		{name: "default answer", stdin: "\n", overwritten: false},
		{name: "confirmed", stdin: "y\n", overwritten: true},
		{name: "assume yes", extra: []string{"--yes"}, overwritten: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, cfg := setup(t)
			out := filepath.Join(dir, "output.csv")
			require.NoError(t, os.WriteFile(out, []byte("old\n"), 0o644))

			args := append([]string{"-c", cfg, "-i", filepath.Join(dir, "round.csv")}, tt.extra...)
			r := runCLI(t, tt.stdin, args...)
			require.NoError(t, r.err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			if tt.overwritten {
				require.NotEqual(t, "old\n", string(data))
			} else {
				require.Equal(t, "old\n", string(data))
				require.Contains(t, r.stderr.String(), "Not overwriting file")
				require.Contains(t, r.stdout.String(), "Overwrite? (y/N)")
			}
		})
	}
}

func TestCalculate_JSONLogsCarryRunID(t *testing.T) {
	dir, _ := setup(t)
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  format: json\n"), 0o644))

	r := runCLI(t, "", "-c", cfg, "-i", filepath.Join(dir, "round.csv"))
	require.NoError(t, r.err)

	lines := strings.Split(strings.TrimSpace(r.stderr.String()), "\n")
	require.NotEmpty(t, lines)

	var runID string
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		id, ok := entry["run_id"].(string)
		require.True(t, ok, "line without run_id: %s", line)
		if runID == "" {
			runID = id
		}
		require.Equal(t, runID, id)
	}
}

func TestCalculate_InvalidConfig(t *testing.T) {
	dir, _ := setup(t)
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: chatty\n"), 0o644))

	r := runCLI(t, "", "-c", cfg, "-i", filepath.Join(dir, "round.csv"))
	require.ErrorContains(t, r.err, "config validation failed")
}

func TestClean(t *testing.T) {
	dir, cfg := setup(t)
	out := filepath.Join(dir, "cleaned.csv")

	r := runCLI(t, "", "clean", "-c", cfg, "--input", filepath.Join(dir, "round.csv"), "--output", out)
	require.NoError(t, r.err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "\n"))
}
