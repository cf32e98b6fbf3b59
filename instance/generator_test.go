package instance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/exactlp/model"
)

func TestLCG_KnownSequence(t *testing.T) {
	g := NewLCG(42)
	assert.Equal(t, int64(-727218647844775745), g.Step())
	assert.Equal(t, int64(1925493387111860520), g.Step())
	assert.Equal(t, int64(7903955759823701685), g.Step())
}

func TestLCG_NextDouble(t *testing.T) {
	g := NewLCG(42)
	assert.InDelta(t, 0.9211547962134723, g.NextDouble(), 1e-15)

	g = NewLCG(7)
	for i := 0; i < 1000; i++ {
		u := g.NextDouble()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.LessOrEqual(t, u, 1.0)
	}
}

func TestGenerator_FirstObjectiveCoefficients(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	m := NewGenerator(cfg, 42).Next()

	require.Len(t, m.C, cfg.Variables)
	assert.Equal(t, "-11", m.C[0].String())
	assert.Equal(t, "26", m.C[1].String())
	assert.Equal(t, "109", m.C[2].String())
	assert.True(t, m.Maximize)
}

func TestGenerator_Shape(t *testing.T) {
	cfg := GeneratorConfig{Variables: 8, Constraints: 200, NonzeroChance: 0.5, EqChance: 0.2, GeChance: 0.3}
	require.NoError(t, cfg.Validate())

	m := NewGenerator(cfg, 1).Next()
	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.NumCols)
	assert.Equal(t, 200, m.NumRows())

	counts := map[model.Relation]int{}
	for _, row := range m.Rows {
		counts[row.Rel]++
		assert.GreaterOrEqual(t, row.RHS.Trunc().Int64(), int64(0))
		assert.LessOrEqual(t, row.RHS.Trunc().Int64(), int64(255))
		for _, v := range row.Coefs {
			if v.IsZero() {
				continue
			}
			assert.GreaterOrEqual(t, v.Trunc().Int64(), int64(-64))
			assert.LessOrEqual(t, v.Trunc().Int64(), int64(191))
		}
	}
	for _, rel := range []model.Relation{model.LessEqual, model.GreaterEqual, model.Equal} {
		assert.Positivef(t, counts[rel], "no %v rows generated", rel)
	}
	for _, v := range m.C {
		assert.GreaterOrEqual(t, v.Trunc().Int64(), int64(-128))
		assert.LessOrEqual(t, v.Trunc().Int64(), int64(127))
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	a := NewGenerator(cfg, 42)
	b := NewGenerator(cfg, 42)

	for i := 0; i < 3; i++ {
		ma, mb := a.Next(), b.Next()
		assert.Equal(t, fmt.Sprint(ma.C, ma.Rows), fmt.Sprint(mb.C, mb.Rows))
	}

	other := NewGenerator(cfg, 43).Next()
	assert.NotEqual(t, fmt.Sprint(NewGenerator(cfg, 42).Next().C), fmt.Sprint(other.C))
}

func TestGeneratorConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GeneratorConfig)
		wantErr bool
	}{
		{"defaults", func(c *GeneratorConfig) {}, false},
		{"no variables", func(c *GeneratorConfig) { c.Variables = 0 }, true},
		{"negative constraints", func(c *GeneratorConfig) { c.Constraints = -1 }, true},
		{"chance above one", func(c *GeneratorConfig) { c.NonzeroChance = 1.5 }, true},
		{"relation chances overflow", func(c *GeneratorConfig) { c.EqChance, c.GeChance = 0.6, 0.6 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
