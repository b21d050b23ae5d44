package leaderboardservice

import (
	"context"
)

// ------------------------
// Fake Confirmer
// ------------------------

type FakeConfirmer struct {
	trace []string

	ConfirmOverwriteFunc func(ctx context.Context, path string) (bool, error)
}

func NewFakeConfirmer() *FakeConfirmer {
	return &FakeConfirmer{
		trace: []string{},
	}
}

func (f *FakeConfirmer) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeConfirmer) ConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	f.record("ConfirmOverwrite")
	if f.ConfirmOverwriteFunc != nil {
		return f.ConfirmOverwriteFunc(ctx, path)
	}
	// Default: keep the existing file
	return false, nil
}

// --- Accessors for assertions ---

func (f *FakeConfirmer) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Interface assertion
var _ Confirmer = (*FakeConfirmer)(nil)
