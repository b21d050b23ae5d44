package leaderboard

import (
	"context"
	"io"
	"log/slog"

	leaderboardservice "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/round/application/parsers"
	"github.com/Black-And-White-Club/pingpong-leaderboard/config"
)

// Module represents the leaderboard module.
type Module struct {
	LeaderboardService leaderboardservice.Service
	config             *config.Config
	logger             *slog.Logger
}

// NewLeaderboardModule creates a new instance of the Leaderboard module.
// Overwrite prompts read from stdin unless assumeYes is set; the ranked table
// and prompts go to stdout.
func NewLeaderboardModule(cfg *config.Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer, assumeYes bool) *Module {
	var confirmer leaderboardservice.Confirmer = &leaderboardservice.PromptConfirmer{In: stdin, Out: stdout}
	if assumeYes {
		confirmer = leaderboardservice.AssumeYes{}
	}

	leaderboardService := leaderboardservice.NewLeaderboardService(parsers.NewFactory(), confirmer, stdout, logger)

	return &Module{
		LeaderboardService: leaderboardService,
		config:             cfg,
		logger:             logger,
	}
}

// Calculate runs one leaderboard calculation. Settings left empty in req are
// taken from the module configuration.
func (m *Module) Calculate(ctx context.Context, req leaderboardservice.RunRequest) (*leaderboardservice.RunResult, error) {
	lb := m.config.Leaderboard

	if len(req.RequiredPrefixes) == 0 {
		req.RequiredPrefixes = lb.RequiredPrefixes
	}
	req.OutputFile = orDefault(req.OutputFile, lb.OutputFile)
	req.HTMLFile = orDefault(req.HTMLFile, lb.HTMLFile)
	req.XLSXFile = orDefault(req.XLSXFile, lb.XLSXFile)
	req.ChartFile = orDefault(req.ChartFile, lb.ChartFile)
	if req.Chart.Width == 0 {
		req.Chart.Width = m.config.Chart.Width
	}
	if req.Chart.Height == 0 {
		req.Chart.Height = m.config.Chart.Height
	}

	m.logger.Debug("Calculating leaderboard",
		"input_csv", req.InputPath,
		"previous_csv", req.PreviousPath,
		"base_folder", req.BaseFolder,
	)

	return m.LeaderboardService.Run(ctx, req)
}

// Clean writes a cleaned copy of input to output using the configured prefixes.
func (m *Module) Clean(ctx context.Context, input, output string) error {
	return m.LeaderboardService.Clean(ctx, leaderboardservice.CleanRequest{
		InputPath:        input,
		OutputPath:       output,
		RequiredPrefixes: m.config.Leaderboard.RequiredPrefixes,
	})
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
