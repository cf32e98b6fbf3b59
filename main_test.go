package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/exactlp/rational"
	"q.log/exactlp/simplex"
)

func TestBenchCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"bench",
		"--programs", "4",
		"--seed", "3",
		"--variables", "5",
		"--constraints", "4",
		"--workers", "2",
		"--log-level", "error",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "optimal=")
	assert.Contains(t, out.String(), "sum=")
}

func TestBenchCommand_EnvOverride(t *testing.T) {
	t.Setenv("EXACTLP_PROGRAMS", "2")
	t.Setenv("EXACTLP_VARIABLES", "3")
	t.Setenv("EXACTLP_CONSTRAINTS", "3")

	cfgCmd := newRootCommand()
	cfgCmd.SetOut(&bytes.Buffer{})
	cfgCmd.SetArgs([]string{"bench", "--log-level", "error"})
	require.NoError(t, cfgCmd.Execute())
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bench", "--programs", "1", "--log-level", "loud"})
	assert.Error(t, cmd.Execute())
}

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome simplex.Outcome
		want    []string
	}{
		{
			name: "optimal",
			outcome: simplex.Optimal{
				Solution: []rational.Rational{rational.MustParse("2"), rational.Zero, rational.MustParse("1/2")},
				Value:    rational.MustParse("5/2"),
			},
			want: []string{"status=Optimal", "objective=5/2 (2.5)", "x0=2", "x2=1/2"},
		},
		{"infeasible", simplex.Infeasible{}, []string{"status=Infeasible"}},
		{"unbounded", simplex.Unbounded{}, []string{"status=Unbounded"}},
		{"timed out", simplex.TimedOut{}, []string{"status=TimedOut"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printOutcome(&buf, tt.outcome)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "x1=")
		})
	}
}
