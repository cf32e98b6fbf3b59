package instance

import (
	"math"

	"github.com/pkg/errors"
	"q.log/exactlp/model"
	"q.log/exactlp/rational"
)

// unbounded reports whether a bound read from a solver library means "none".
func unbounded(v float64) bool {
	return math.IsInf(v, 0) || v <= -math.MaxFloat64 || v >= math.MaxFloat64
}

// RowConstraints converts a row lb <= coefs·x <= ub into constraints.
// Equal bounds give one = row, a single finite bound one <= or >= row, two
// distinct finite bounds a >= row followed by a <= row, and a free row nothing.
func RowConstraints(coefs []float64, lb, ub float64) ([]model.Constraint, error) {
	row := make([]rational.Rational, len(coefs))
	for i, v := range coefs {
		r, err := rational.FromFloat64(v)
		if err != nil {
			return nil, errors.Wrapf(err, "coefficient %d", i)
		}
		row[i] = r
	}

	hasLower, hasUpper := !unbounded(lb), !unbounded(ub)
	if hasLower && hasUpper && lb > ub {
		return nil, errors.Errorf("row bounds %v > %v", lb, ub)
	}

	var out []model.Constraint
	add := func(rel model.Relation, bound float64) error {
		rhs, err := rational.FromFloat64(bound)
		if err != nil {
			return errors.Wrap(err, "row bound")
		}
		out = append(out, model.Constraint{Coefs: row, Rel: rel, RHS: rhs})
		return nil
	}

	switch {
	case hasLower && hasUpper && lb == ub:
		return out, add(model.Equal, lb)
	case hasLower && hasUpper:
		if err := add(model.GreaterEqual, lb); err != nil {
			return nil, err
		}
		return out, add(model.LessEqual, ub)
	case hasLower:
		return out, add(model.GreaterEqual, lb)
	case hasUpper:
		return out, add(model.LessEqual, ub)
	}
	return nil, nil
}

// ColumnConstraints turns the bounds of variable col (of n) into rows.
// Variables are always non-negative, so only a positive lower bound or a
// finite upper bound needs a row.
func ColumnConstraints(col, n int, lb, ub float64) ([]model.Constraint, error) {
	unit := make([]float64, n)
	unit[col] = 1

	if unbounded(lb) || lb <= 0 {
		lb = math.Inf(-1)
	}
	if unbounded(ub) {
		ub = math.Inf(1)
	}
	if !unbounded(ub) && ub < 0 {
		return nil, errors.Errorf("column %d: upper bound %v excludes non-negative values", col, ub)
	}
	return RowConstraints(unit, lb, ub)
}
