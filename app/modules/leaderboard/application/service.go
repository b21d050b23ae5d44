package leaderboardservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	leaderboarddomain "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/domain"
	"github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/infrastructure/exporters"
	"github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/round/application/parsers"
	"github.com/Black-And-White-Club/pingpong-leaderboard/pkg/termstyle"
)

// cleanedPrefix is prepended to the input file name for the intermediate cleaned export.
const cleanedPrefix = "cleaned_"

// LeaderboardService handles leaderboard logic.
type LeaderboardService struct {
	parsers   parsers.ParserFactory
	confirmer Confirmer
	stdout    io.Writer
	logger    *slog.Logger
}

// NewLeaderboardService creates a new LeaderboardService. The ranked table is
// printed to stdout; a nil stdout discards it.
func NewLeaderboardService(factory parsers.ParserFactory, confirmer Confirmer, stdout io.Writer, logger *slog.Logger) *LeaderboardService {
	if stdout == nil {
		stdout = io.Discard
	}
	return &LeaderboardService{
		parsers:   factory,
		confirmer: confirmer,
		stdout:    stdout,
		logger:    logger,
	}
}

// Clean reads the export, drops rows with every required field blank and
// writes the remaining rows as CSV.
func (s *LeaderboardService) Clean(ctx context.Context, req CleanRequest) error {
	if err := s.requireFile(req.InputPath, "input"); err != nil {
		return err
	}
	return s.cleanFile(ctx, req.InputPath, req.OutputPath, req.RequiredPrefixes)
}

func (s *LeaderboardService) cleanFile(ctx context.Context, src, dst string, prefixes []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := s.readTable(src)
	if err != nil {
		return err
	}

	if len(prefixes) == 0 {
		prefixes = parsers.DefaultRequiredPrefixes
	}
	cleaned := parsers.Clean(rows, prefixes)

	if err := exporters.WriteFileAtomic(dst, func(w io.Writer) error {
		return parsers.WriteCSV(w, cleaned)
	}); err != nil {
		return fmt.Errorf("failed to write cleaned file: %w", err)
	}

	s.logger.Info("Input results csv cleaned up and written to a file",
		"input_file", src,
		"output_file", dst,
		"rows_kept", max(len(cleaned)-1, 0),
		"rows_dropped", max(len(rows)-len(cleaned), 0),
	)
	return nil
}

// Run calculates the leaderboard for one round of results.
func (s *LeaderboardService) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	paths := resolvePaths(req)

	if err := s.requireFile(paths.input, "input_csv"); err != nil {
		return nil, err
	}

	if err := s.cleanFile(ctx, paths.input, paths.cleaned, req.RequiredPrefixes); err != nil {
		return nil, err
	}
	defer s.removeCleaned(paths.cleaned)

	standings := make(leaderboarddomain.Standings)
	if paths.previous != "" {
		if err := s.requireFile(paths.previous, "previous_csv"); err != nil {
			return nil, err
		}
		prior, err := s.loadPrevious(paths.previous)
		if err != nil {
			return nil, err
		}
		standings = prior
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := s.loadMatches(paths.cleaned)
	if err != nil {
		return nil, err
	}

	leaderboarddomain.Aggregate(records, standings)
	leaderboard := leaderboarddomain.Rank(standings)

	result := &RunResult{
		Leaderboard:      leaderboard,
		MatchesProcessed: len(records),
	}

	if err := exporters.WriteTable(s.stdout, leaderboard); err != nil {
		s.logger.Warn("Failed to print leaderboard", "error", err)
	}

	s.logger.Info("Results calculated successfully",
		"input_csv", absPath(paths.input),
		"matches", len(records),
		"players", len(leaderboard),
	)

	if err := s.confirmOverwrite(ctx, paths.output); err != nil {
		return result, err
	}

	if err := s.writeOutputs(req, paths, result); err != nil {
		return result, err
	}

	return result, nil
}

func (s *LeaderboardService) confirmOverwrite(ctx context.Context, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check output file: %w", err)
	}

	ok, err := s.confirmer.ConfirmOverwrite(ctx, absPath(path))
	if err != nil {
		return fmt.Errorf("failed to confirm overwrite: %w", err)
	}
	if !ok {
		s.logger.Warn("Not overwriting file as specified by user. Exiting", "file", absPath(path))
		return ErrOverwriteDeclined
	}

	s.logger.Warn("File been overwritten as specified by user", "file", absPath(path))
	return nil
}

func (s *LeaderboardService) writeOutputs(req RunRequest, paths runPaths, result *RunResult) error {
	leaderboard := result.Leaderboard

	if err := exporters.WriteFileAtomic(paths.output, func(w io.Writer) error {
		return exporters.WriteStandingsCSV(w, leaderboard)
	}); err != nil {
		s.logger.Error("Failed to write results", "file", paths.output, "error", err)
		return fmt.Errorf("failed to write results: %w", err)
	}
	result.OutputPath = paths.output
	s.logger.Info("Results written to file", "file", absPath(paths.output))
	fmt.Fprintf(s.stdout, "Results written to %s\n", termstyle.BoldGreen(absPath(paths.output)))

	if paths.html != "" {
		if err := exporters.WriteFileAtomic(paths.html, func(w io.Writer) error {
			return exporters.WriteHTML(w, leaderboard)
		}); err != nil {
			return fmt.Errorf("failed to write HTML table: %w", err)
		}
		result.HTMLPath = paths.html
		s.logger.Debug("HTML table written", "file", paths.html)
	}

	if paths.xlsx != "" {
		if err := exporters.WriteFileAtomic(paths.xlsx, func(w io.Writer) error {
			return exporters.WriteXLSX(w, leaderboard)
		}); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		result.XLSXPath = paths.xlsx
		s.logger.Debug("Workbook written", "file", paths.xlsx)
	}

	if paths.chart != "" {
		png, err := GenerateStandingsChart(leaderboard, req.Chart)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		if err := exporters.WriteFileAtomic(paths.chart, func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		result.ChartPath = paths.chart
		s.logger.Debug("Chart written", "file", paths.chart)
	}

	return nil
}

func (s *LeaderboardService) loadPrevious(path string) (leaderboarddomain.Standings, error) {
	rows, err := s.readTable(path)
	if err != nil {
		return nil, err
	}

	standings, err := parsers.ParseStandings(rows)
	if err != nil {
		s.logger.Error("Failed to parse previous results", "file", path, "error", err)
		return nil, fmt.Errorf("failed to parse previous results %s: %w", path, err)
	}

	s.logger.Info("Loaded previous results", "file", path, "players", len(standings))
	return standings, nil
}

func (s *LeaderboardService) loadMatches(path string) ([]leaderboarddomain.MatchRecord, error) {
	rows, err := s.readTable(path)
	if err != nil {
		return nil, err
	}

	records, err := parsers.ParseMatchRecords(rows)
	if err != nil {
		s.logger.Error("Failed to parse match results", "file", path, "error", err)
		return nil, fmt.Errorf("failed to parse match results %s: %w", path, err)
	}

	return records, nil
}

func (s *LeaderboardService) readTable(path string) ([][]string, error) {
	parser, err := s.parsers.GetParser(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// requireFile checks that path is a regular file. field names the option the
// path came from so the log points at the right argument.
func (s *LeaderboardService) requireFile(path, field string) error {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	s.logger.Error(fmt.Sprintf("File not found. Check the %s file name.", field), "file_name", absPath(path))
	return fmt.Errorf("%w: %s", ErrMissingInput, path)
}

func (s *LeaderboardService) removeCleaned(path string) {
	s.logger.Info("Done with cleaned file, removing", "file", absPath(path))
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Failed to remove cleaned file", "file", path, "error", err)
	}
}

type runPaths struct {
	base     string
	input    string
	cleaned  string
	previous string
	output   string
	html     string
	xlsx     string
	chart    string
}

func resolvePaths(req RunRequest) runPaths {
	input := req.InputPath
	base := req.BaseFolder
	if base == "" {
		base = filepath.Dir(input)
	} else {
		input = resolve(base, input)
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	output := req.OutputFile
	if output == "" {
		output = "output.csv"
	}

	return runPaths{
		base:     base,
		input:    input,
		cleaned:  filepath.Join(base, cleanedPrefix+stem+".csv"),
		previous: resolve(base, req.PreviousPath),
		output:   resolve(base, output),
		html:     resolve(base, req.HTMLFile),
		xlsx:     resolve(base, req.XLSXFile),
		chart:    resolve(base, req.ChartFile),
	}
}

// resolve places a bare file name in base. Empty names stay empty; absolute
// paths and names that already carry a directory are used as given, relative
// to the working directory.
func resolve(base, name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	return filepath.Join(base, name)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
