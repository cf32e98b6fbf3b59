package simplex

import (
	"fmt"

	"q.log/exactlp/rational"
)

// Status classifies the result of a solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusTimedOut:
		return "TimedOut"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of Solve. It is one of Optimal, Infeasible,
// Unbounded or TimedOut; callers are expected to type switch over all four.
type Outcome interface {
	Status() Status
	isOutcome()
}

// Optimal carries the optimal vertex and the objective value in the sign of
// the original problem.
type Optimal struct {
	Solution []rational.Rational
	Value    rational.Rational
}

// Infeasible means the constraints admit no non-negative solution.
type Infeasible struct{}

// Unbounded means the objective can be improved without limit.
type Unbounded struct{}

// TimedOut means the step budget ran out before the solve finished.
type TimedOut struct{}

func (Optimal) Status() Status    { return StatusOptimal }
func (Infeasible) Status() Status { return StatusInfeasible }
func (Unbounded) Status() Status  { return StatusUnbounded }
func (TimedOut) Status() Status   { return StatusTimedOut }

func (Optimal) isOutcome()    {}
func (Infeasible) isOutcome() {}
func (Unbounded) isOutcome()  {}
func (TimedOut) isOutcome()   {}

func (o Optimal) String() string {
	return fmt.Sprintf("Optimal(%v, x=%v)", o.Value, o.Solution)
}

func (Infeasible) String() string { return StatusInfeasible.String() }
func (Unbounded) String() string  { return StatusUnbounded.String() }
func (TimedOut) String() string   { return StatusTimedOut.String() }
