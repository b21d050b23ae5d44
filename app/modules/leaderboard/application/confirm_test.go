package leaderboardservice

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptConfirmer_ConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "yes mixed case", input: "YeS\n", want: true},
		{name: "padded", input: "  y  \n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line defaults to no", input: "\n", want: false},
		{name: "eof without newline", input: "y", want: true},
		{name: "closed input", input: "", want: false},
		{name: "anything else", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &PromptConfirmer{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.ConfirmOverwrite(context.Background(), "/tmp/output.csv")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Contains(t, out.String(), "/tmp/output.csv")
			require.Contains(t, out.String(), "Overwrite? (y/N) [N]: ")
		})
	}
}

func TestPromptConfirmer_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	p := &PromptConfirmer{In: strings.NewReader("y\n"), Out: &out}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.ConfirmOverwrite(ctx, "output.csv")
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, got)
	require.Empty(t, out.String())
}

func TestAssumeYes(t *testing.T) {
	ok, err := AssumeYes{}.ConfirmOverwrite(context.Background(), "anything")
	require.NoError(t, err)
	require.True(t, ok)
}
