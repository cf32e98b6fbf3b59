// Package simplex solves linear programs with the two-phase tableau simplex
// method over exact rational arithmetic.
//
// The entering column is the one with the most negative reduced cost and the
// leaving row the one with the smallest ratio, both taking the lowest index on
// ties. The pivoting path, and therefore the vertex reported on degenerate
// problems, is fully deterministic.
package simplex

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"q.log/exactlp/model"
)

// Solver runs the two-phase simplex method. A Solver may be reused
// sequentially but must not be shared between goroutines; use one Solver per
// concurrent solve.
type Solver struct {
	// MaxSteps bounds the number of pivoting loop iterations over both phases.
	MaxSteps int

	// Debug enables tableau dumps to Trace at each phase boundary.
	Debug bool

	// Trace receives the debug dumps. Defaults to os.Stdout.
	Trace io.Writer

	steps int
}

// NewSolver returns a Solver with the given step budget.
func NewSolver(maxSteps int, debug bool) *Solver {
	return &Solver{
		MaxSteps: maxSteps,
		Debug:    debug,
	}
}

// Solve is shorthand for NewSolver(maxSteps, debug).Solve(m).
func Solve(m *model.Model, maxSteps int, debug bool) (Outcome, error) {
	return NewSolver(maxSteps, debug).Solve(m)
}

// Steps returns the number of loop iterations used by the last Solve.
func (s *Solver) Steps() int {
	return s.steps
}

// Solve classifies m as Optimal, Infeasible, Unbounded or TimedOut. The model
// is only read. An error is returned only for malformed models.
func (s *Solver) Solve(m *model.Model) (Outcome, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	s.steps = 0

	t := newTableau(m)
	s.dump(t, "Initial Tableau")

	if t.numArtificial > 0 {
		finished, err := s.optimize(t)
		if err != nil {
			return nil, errors.Wrap(err, "phase I")
		}
		s.dump(t, "After Phase I")

		if !finished {
			return s.halted(), nil
		}
		if !t.rhs(t.rows - 1).IsZero() {
			return Infeasible{}, nil
		}
		t.dropArtificial()
	}

	t.resetObjective(m.C)
	s.dump(t, "Before Phase II")

	finished, err := s.optimize(t)
	if err != nil {
		return nil, errors.Wrap(err, "phase II")
	}
	s.dump(t, "After Phase II")

	if !finished {
		return s.halted(), nil
	}

	value := t.rhs(t.rows - 1)
	if !m.Maximize {
		value = value.Neg()
	}
	return Optimal{Solution: t.solution(), Value: value}, nil
}

// optimize pivots until the objective row has no negative entry (true), or
// until the ratio test fails or the step budget runs out (false).
func (s *Solver) optimize(t *tableau) (bool, error) {
	for {
		s.steps++
		col := t.entering()
		if col == -1 {
			return true, nil
		}
		row, err := t.leaving(col)
		if err != nil {
			return false, err
		}
		if row == -1 {
			return false, nil
		}
		if err := t.pivot(row, col); err != nil {
			return false, err
		}

		if s.steps >= s.MaxSteps {
			return false, nil
		}
	}
}

func (s *Solver) halted() Outcome {
	if s.steps >= s.MaxSteps {
		return TimedOut{}
	}
	return Unbounded{}
}

func (s *Solver) dump(t *tableau, title string) {
	if !s.Debug {
		return
	}
	w := s.Trace
	if w == nil {
		w = os.Stdout
	}
	printTableau(w, t, title)
}
