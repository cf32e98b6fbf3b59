package model

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/exactlp/rational"
)

// ErrDimensionMismatch is returned when a coefficient vector does not match
// the number of decision variables.
var ErrDimensionMismatch = errors.New("mismatch number of variables")

// Relation is the comparison operator of a constraint.
type Relation int

const (
	LessEqual Relation = iota
	GreaterEqual
	Equal
)

func (r Relation) String() string {
	switch r {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// ParseRelation accepts "<=", ">=" and "=".
func ParseRelation(s string) (Relation, error) {
	switch s {
	case "<=":
		return LessEqual, nil
	case ">=":
		return GreaterEqual, nil
	case "=", "==":
		return Equal, nil
	}
	return 0, errors.Errorf("unknown relation %q", s)
}

// Constraint is a single row: Coefs · x Rel RHS.
type Constraint struct {
	Coefs []rational.Rational
	Rel   Relation
	RHS   rational.Rational
}

// Model is a linear program over non-negative decision variables.
//
// C holds the objective in maximization form. When the model minimizes, the
// objective is negated once by NewModel; the solver negates the optimal
// value back.
type Model struct {
	//C objective function coefficients, maximization form
	C []rational.Rational

	//Rows constraints, in tableau row order
	Rows []Constraint

	Maximize bool

	NumCols int
}

// NewModel builds a model over len(objective) variables. The slice is copied.
func NewModel(objective []rational.Rational, maximize bool) *Model {
	c := make([]rational.Rational, len(objective))
	for i, v := range objective {
		if maximize {
			c[i] = v
		} else {
			c[i] = v.Neg()
		}
	}

	return &Model{
		C:        c,
		Maximize: maximize,
		NumCols:  len(objective),
	}
}

// Objective returns the objective coefficients with the caller's original sign.
func (m *Model) Objective() []rational.Rational {
	obj := make([]rational.Rational, len(m.C))
	for i, v := range m.C {
		if m.Maximize {
			obj[i] = v
		} else {
			obj[i] = v.Neg()
		}
	}
	return obj
}

// NumRows returns the number of constraints.
func (m *Model) NumRows() int {
	return len(m.Rows)
}

// AddRow appends the constraint coefs · x rel rhs. The slice is copied.
func (m *Model) AddRow(coefs []rational.Rational, rel Relation, rhs rational.Rational) error {
	if len(coefs) != m.NumCols {
		return errors.Wrapf(ErrDimensionMismatch, "row %d has %d coefficients, want %d", len(m.Rows), len(coefs), m.NumCols)
	}

	row := make([]rational.Rational, len(coefs))
	copy(row, coefs)
	m.Rows = append(m.Rows, Constraint{Coefs: row, Rel: rel, RHS: rhs})
	return nil
}

// AddLeRow adds coefs · x <= rhs.
func (m *Model) AddLeRow(coefs []rational.Rational, rhs rational.Rational) error {
	return m.AddRow(coefs, LessEqual, rhs)
}

// AddGeRow adds coefs · x >= rhs.
func (m *Model) AddGeRow(coefs []rational.Rational, rhs rational.Rational) error {
	return m.AddRow(coefs, GreaterEqual, rhs)
}

// AddEqRow adds coefs · x = rhs.
func (m *Model) AddEqRow(coefs []rational.Rational, rhs rational.Rational) error {
	return m.AddRow(coefs, Equal, rhs)
}

// Validate checks that every row has one coefficient per variable and a known relation.
func (m *Model) Validate() error {
	if len(m.C) != m.NumCols {
		return errors.Wrapf(ErrDimensionMismatch, "objective has %d coefficients, want %d", len(m.C), m.NumCols)
	}
	for i, row := range m.Rows {
		if len(row.Coefs) != m.NumCols {
			return errors.Wrapf(ErrDimensionMismatch, "row %d has %d coefficients, want %d", i, len(row.Coefs), m.NumCols)
		}
		switch row.Rel {
		case LessEqual, GreaterEqual, Equal:
		default:
			return errors.Errorf("row %d: unknown relation %d", i, int(row.Rel))
		}
	}
	return nil
}

// Dense returns a floating point approximation of the model: the objective
// row c (maximization form), the constraint matrix A and the right-hand side b.
// It is meant for display only.
func (m *Model) Dense() (c, a, b *mat.Dense) {
	cols := m.NumCols
	if cols == 0 {
		cols = 1
	}
	rows := len(m.Rows)
	if rows == 0 {
		rows = 1
	}

	c = mat.NewDense(1, cols, nil)
	for j, v := range m.C {
		c.Set(0, j, v.Float64())
	}
	a = mat.NewDense(rows, cols, nil)
	b = mat.NewDense(rows, 1, nil)
	for i, row := range m.Rows {
		for j, v := range row.Coefs {
			a.Set(i, j, v.Float64())
		}
		b.Set(i, 0, row.RHS.Float64())
	}
	return c, a, b
}

// Print writes a float approximation of c, A and b followed by the relation
// of every row.
func (m *Model) Print(w io.Writer) {
	c, a, b := m.Dense()
	fmt.Fprintf(w, "c = %v\n", mat.Formatted(c, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "A = %v\n", mat.Formatted(a, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "b = %v\n", mat.Formatted(b, mat.Prefix("    "), mat.Squeeze()))

	rels := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		rels[i] = row.Rel.String()
	}
	fmt.Fprintf(w, "rel = %v\n", rels)
}
