package leaderboardservice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Black-And-White-Club/pingpong-leaderboard/pkg/termstyle"
)

// PromptConfirmer asks on Out and reads the answer from In.
// Only "y" or "yes" (any case) confirm; an empty answer means no.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// ConfirmOverwrite prompts once for the given path.
func (p *PromptConfirmer) ConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(p.Out, "File %s already exists. Overwrite? (y/N) [N]: ", termstyle.BoldRed(path))

	answer, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	return IsAffirmative(answer), nil
}

// IsAffirmative reports whether a prompt answer means yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AssumeYes confirms every overwrite without asking.
type AssumeYes struct{}

// ConfirmOverwrite always returns true.
func (AssumeYes) ConfirmOverwrite(context.Context, string) (bool, error) {
	return true, nil
}
