package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/exactlp/rational"
)

func ints(vals ...int64) []rational.Rational {
	out := make([]rational.Rational, len(vals))
	for i, v := range vals {
		out[i] = rational.FromInt(v)
	}
	return out
}

func TestNewModel_NegatesOnceForMinimize(t *testing.T) {
	obj := ints(3, -2)

	m := NewModel(obj, false)
	assert.Equal(t, "-3", m.C[0].String())
	assert.Equal(t, "2", m.C[1].String())

	back := m.Objective()
	assert.Equal(t, "3", back[0].String())
	assert.Equal(t, "-2", back[1].String())

	// The caller's slice is not touched.
	assert.Equal(t, "3", obj[0].String())
}

func TestNewModel_Maximize(t *testing.T) {
	m := NewModel(ints(3, 2), true)
	assert.Equal(t, "3", m.C[0].String())
	assert.Equal(t, 2, m.NumCols)
	assert.Equal(t, 0, m.NumRows())
}

func TestAddRow(t *testing.T) {
	m := NewModel(ints(1, 1), true)
	require.NoError(t, m.AddLeRow(ints(1, 1), rational.FromInt(4)))
	require.NoError(t, m.AddGeRow(ints(1, 0), rational.FromInt(1)))
	require.NoError(t, m.AddEqRow(ints(0, 1), rational.FromInt(2)))

	require.Equal(t, 3, m.NumRows())
	assert.Equal(t, LessEqual, m.Rows[0].Rel)
	assert.Equal(t, GreaterEqual, m.Rows[1].Rel)
	assert.Equal(t, Equal, m.Rows[2].Rel)
	assert.NoError(t, m.Validate())

	err := m.AddLeRow(ints(1), rational.One)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, 3, m.NumRows())
}

func TestAddRow_CopiesCoefficients(t *testing.T) {
	m := NewModel(ints(1), true)
	coefs := ints(5)
	require.NoError(t, m.AddLeRow(coefs, rational.One))
	coefs[0] = rational.FromInt(7)
	assert.Equal(t, "5", m.Rows[0].Coefs[0].String())
}

func TestValidate(t *testing.T) {
	m := NewModel(ints(1, 2), true)
	m.Rows = append(m.Rows, Constraint{Coefs: ints(1), Rel: LessEqual, RHS: rational.One})
	assert.ErrorIs(t, m.Validate(), ErrDimensionMismatch)

	m = NewModel(ints(1), true)
	m.Rows = append(m.Rows, Constraint{Coefs: ints(1), Rel: Relation(9), RHS: rational.One})
	assert.Error(t, m.Validate())
}

func TestRelation(t *testing.T) {
	for _, rel := range []Relation{LessEqual, GreaterEqual, Equal} {
		parsed, err := ParseRelation(rel.String())
		require.NoError(t, err)
		assert.Equal(t, rel, parsed)
	}
	_, err := ParseRelation("<")
	assert.Error(t, err)
	assert.Equal(t, "Relation(7)", Relation(7).String())
}

func TestDenseAndPrint(t *testing.T) {
	m := NewModel(ints(3, 2), true)
	require.NoError(t, m.AddLeRow(ints(1, 1), rational.FromInt(4)))
	require.NoError(t, m.AddLeRow(ints(1, 0), rational.FromInt(2)))

	c, a, b := m.Dense()
	assert.Equal(t, 3.0, c.At(0, 0))
	assert.Equal(t, 1.0, a.At(1, 0))
	assert.Equal(t, 0.0, a.At(1, 1))
	assert.Equal(t, 2.0, b.At(1, 0))

	var buf bytes.Buffer
	m.Print(&buf)
	assert.Contains(t, buf.String(), "c = ")
	assert.Contains(t, buf.String(), "rel = [<= <=]")
}
