package simplex

import (
	"q.log/exactlp/model"
	"q.log/exactlp/rational"
)

// tableau is the dense simplex tableau owned by a single solve.
//
// The last row is the objective row and the last column the right-hand side.
// Columns are ordered: decision variables, slack/surplus variables in row
// order, artificial variables in row order, rhs.
type tableau struct {
	m          [][]rational.Rational
	rows, cols int

	//basis[i] is the column of the basic variable of row i
	basis []int

	numVars       int
	numSlack      int
	numArtificial int
}

// newTableau brings m into standard form and builds the Phase I objective
// row. A zero artificial count means Phase I can be skipped.
func newTableau(m *model.Model) *tableau {
	t := &tableau{numVars: m.NumCols}
	for _, row := range m.Rows {
		switch row.Rel {
		case model.LessEqual:
			t.numSlack++
		case model.GreaterEqual:
			t.numSlack++
			t.numArtificial++
		case model.Equal:
			t.numArtificial++
		}
	}

	t.rows = len(m.Rows) + 1
	t.cols = t.numVars + t.numSlack + t.numArtificial + 1
	t.basis = make([]int, t.rows-1)
	t.m = make([][]rational.Rational, t.rows)
	for i := range t.m {
		t.m[i] = make([]rational.Rational, t.cols)
		for j := range t.m[i] {
			t.m[i][j] = rational.Zero
		}
	}

	slack := t.numVars
	artificial := t.numVars + t.numSlack
	for i, row := range m.Rows {
		copy(t.m[i], row.Coefs)

		switch row.Rel {
		case model.LessEqual:
			t.m[i][slack] = rational.One
			t.basis[i] = slack
			slack++
		case model.GreaterEqual:
			t.m[i][slack] = rational.One.Neg()
			t.m[i][artificial] = rational.One
			t.basis[i] = artificial
			artificial++
			slack++
		case model.Equal:
			t.m[i][artificial] = rational.One
			t.basis[i] = artificial
			artificial++
		}

		t.m[i][t.cols-1] = row.RHS
	}

	// Phase I objective: minimize the sum of the artificial variables,
	// expressed in the non-basic columns.
	obj := t.m[t.rows-1]
	for j := range obj {
		if t.isArtificial(j) {
			obj[j] = rational.One
		}
	}
	for i, v := range t.basis {
		if !t.isArtificial(v) {
			continue
		}
		for j := range obj {
			obj[j] = obj[j].Sub(t.m[i][j])
		}
	}

	return t
}

func (t *tableau) isArtificial(col int) bool {
	return col >= t.numVars+t.numSlack && col < t.cols-1
}

func (t *tableau) rhs(row int) rational.Rational {
	return t.m[row][t.cols-1]
}

func (t *tableau) objective() []rational.Rational {
	return t.m[t.rows-1]
}

// entering returns the column with the most negative objective row entry,
// the lowest index on ties, or -1 when the row has no negative entry.
func (t *tableau) entering() int {
	best := rational.Zero
	col := -1
	obj := t.objective()
	for j := 0; j < t.cols-1; j++ {
		if obj[j].Cmp(best) < 0 {
			col = j
			best = obj[j]
		}
	}
	return col
}

// leaving runs the ratio test on col and returns the row with the smallest
// rhs/entry ratio among rows with a positive entry, the lowest index on ties,
// or -1 when no entry is positive.
func (t *tableau) leaving(col int) (int, error) {
	var best rational.Rational
	row := -1
	for i := 0; i < t.rows-1; i++ {
		if t.m[i][col].Sign() <= 0 {
			continue
		}
		ratio, err := t.rhs(i).Div(t.m[i][col])
		if err != nil {
			return -1, err
		}
		if row == -1 || ratio.Cmp(best) < 0 {
			best = ratio
			row = i
		}
	}
	return row, nil
}

// pivot makes col a unit column with its 1 in row and records col as the
// basic variable of row.
func (t *tableau) pivot(row, col int) error {
	p := t.m[row][col]
	pr := t.m[row]
	for j := range pr {
		v, err := pr[j].Div(p)
		if err != nil {
			return err
		}
		pr[j] = v
	}

	for i := range t.m {
		if i == row {
			continue
		}
		factor := t.m[i][col]
		if factor.IsZero() {
			continue
		}
		r := t.m[i]
		for j := range r {
			r[j] = r[j].Sub(factor.Mul(pr[j]))
		}
	}

	t.basis[row] = col
	return nil
}

// dropArtificial removes the artificial columns, moving the rhs column left.
// Rows whose basic variable is still artificial keep that (now stale) index;
// it lies at or past the rhs column and is ignored when reading the solution.
func (t *tableau) dropArtificial() {
	if t.numArtificial == 0 {
		return
	}
	cols := t.cols - t.numArtificial
	for i, r := range t.m {
		r[cols-1] = r[t.cols-1]
		t.m[i] = r[:cols:cols]
	}
	t.cols = cols
	t.numArtificial = 0
}

// resetObjective replaces the objective row with the reduced costs of c
// (maximization form) against the current basis.
func (t *tableau) resetObjective(c []rational.Rational) {
	obj := t.objective()
	for j := range obj {
		obj[j] = rational.Zero
	}
	for j := 0; j < t.numVars; j++ {
		obj[j] = c[j].Neg()
	}
	for i, v := range t.basis {
		if v >= t.numVars {
			continue
		}
		for j := range obj {
			obj[j] = obj[j].Add(c[v].Mul(t.m[i][j]))
		}
	}
}

// solution reads the decision variables off the basis; non-basic variables are zero.
func (t *tableau) solution() []rational.Rational {
	x := make([]rational.Rational, t.numVars)
	for i := range x {
		x[i] = rational.Zero
	}
	for i, v := range t.basis {
		if v < t.numVars {
			x[v] = t.rhs(i)
		}
	}
	return x
}
