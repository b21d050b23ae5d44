package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard"
	leaderboardservice "github.com/Black-And-White-Club/pingpong-leaderboard/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/pingpong-leaderboard/config"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliApp := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	calculate := func(c *cli.Context) error {
		return runCalculate(c, stdin, stdout, stderr)
	}

	return &cli.App{
		Name:      "leaderboard",
		Usage:     "rank table tennis players from exported round-robin results",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     calculateFlags(),
		Action:    calculate,
		Commands: []*cli.Command{
			{
				Name:   "calculate",
				Usage:  "merge a round of results into the leaderboard and write it out",
				Flags:  calculateFlags(),
				Action: calculate,
			},
			{
				Name:  "clean",
				Usage: "drop export rows that carry no player or game data",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "input", Required: true, Usage: "exported results file (csv or xlsx)"},
					&cli.StringFlag{Name: "output", Required: true, Usage: "cleaned csv to write"},
				},
				Action: func(c *cli.Context) error {
					return runClean(c, stderr)
				},
			},
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.yaml",
		Usage:   "path to the configuration file",
	}
}

func calculateFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "input_csv", Aliases: []string{"i"}, Usage: "exported results of the round (required)"},
		&cli.StringFlag{Name: "previous_csv", Aliases: []string{"p"}, Usage: "leaderboard written by an earlier run"},
		&cli.StringFlag{Name: "base_folder", Aliases: []string{"b"}, Usage: "folder the other file names are relative to"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "leaderboard csv to write (default: output.csv)"},
		&cli.StringFlag{Name: "html", Usage: "html table to write (default: test.html)"},
		&cli.StringFlag{Name: "xlsx", Usage: "also write the leaderboard as a workbook"},
		&cli.StringFlag{Name: "chart", Usage: "also write a png chart of matches won"},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "overwrite existing output without asking"},
	}
}

func runCalculate(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	// Shared by the root action and calculate, so not marked Required.
	if c.String("input_csv") == "" {
		return errors.New(`required flag "input_csv" not set`)
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	module := leaderboard.NewLeaderboardModule(cfg, newLogger(cfg.Logging, stderr), stdin, stdout, c.Bool("yes"))
	_, err = module.Calculate(c.Context, leaderboardservice.RunRequest{
		InputPath:    c.String("input_csv"),
		PreviousPath: c.String("previous_csv"),
		BaseFolder:   c.String("base_folder"),
		OutputFile:   c.String("output"),
		HTMLFile:     c.String("html"),
		XLSXFile:     c.String("xlsx"),
		ChartFile:    c.String("chart"),
	})
	return exitStatus(err)
}

func runClean(c *cli.Context, stderr io.Writer) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	module := leaderboard.NewLeaderboardModule(cfg, newLogger(cfg.Logging, stderr), nil, io.Discard, true)
	return exitStatus(module.Clean(c.Context, c.String("input"), c.String("output")))
}

// exitStatus maps the outcomes that end a run without failing it to a nil error.
// Both are already logged by the service.
func exitStatus(err error) error {
	if errors.Is(err, leaderboardservice.ErrMissingInput) || errors.Is(err, leaderboardservice.ErrOverwriteDeclined) {
		return nil
	}
	return err
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("run_id", uuid.NewString())
}
