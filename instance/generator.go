package instance

import (
	"github.com/pkg/errors"
	"q.log/exactlp/model"
	"q.log/exactlp/rational"
)

// GeneratorConfig controls the shape of generated programs.
type GeneratorConfig struct {
	Variables   int
	Constraints int

	// NonzeroChance is the probability of a constraint coefficient being nonzero.
	NonzeroChance float64
	// EqChance and GeChance are the probabilities of = and >= rows; the rest are <=.
	EqChance float64
	GeChance float64
}

// DefaultGeneratorConfig returns 50x50 programs with sparse rows, mostly <=.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Variables:     50,
		Constraints:   50,
		NonzeroChance: 0.2,
		EqChance:      0.05,
		GeChance:      0.1,
	}
}

func (c GeneratorConfig) Validate() error {
	if c.Variables <= 0 {
		return errors.Errorf("variables must be positive, got %d", c.Variables)
	}
	if c.Constraints < 0 {
		return errors.Errorf("constraints must not be negative, got %d", c.Constraints)
	}
	chances := []struct {
		name string
		p    float64
	}{
		{"nonzero chance", c.NonzeroChance},
		{"eq chance", c.EqChance},
		{"ge chance", c.GeChance},
	}
	for _, ch := range chances {
		if ch.p < 0 || ch.p > 1 {
			return errors.Errorf("%s must be in [0, 1], got %v", ch.name, ch.p)
		}
	}
	if c.EqChance+c.GeChance > 1 {
		return errors.Errorf("eq chance + ge chance must not exceed 1, got %v", c.EqChance+c.GeChance)
	}
	return nil
}

// Generator builds random maximization programs from an LCG. Programs must be
// drawn in order from a single Generator to be reproducible.
type Generator struct {
	cfg GeneratorConfig
	rng *LCG
}

func NewGenerator(cfg GeneratorConfig, seed int64) *Generator {
	return &Generator{cfg: cfg, rng: NewLCG(seed)}
}

// Next returns the next program: objective coefficients in [-128, 127],
// constraint coefficients in [-64, 191] and right-hand sides in [0, 255].
func (g *Generator) Next() *model.Model {
	objective := make([]rational.Rational, g.cfg.Variables)
	for i := range objective {
		objective[i] = g.coefficient(0)
	}

	m := model.NewModel(objective, true)
	for i := 0; i < g.cfg.Constraints; i++ {
		coefs := make([]rational.Rational, g.cfg.Variables)
		for j := range coefs {
			if g.rng.NextDouble() < g.cfg.NonzeroChance {
				coefs[j] = g.coefficient(64)
			} else {
				coefs[j] = rational.Zero
			}
		}
		rel := g.relation()
		rhs := g.coefficient(128)
		m.Rows = append(m.Rows, model.Constraint{Coefs: coefs, Rel: rel, RHS: rhs})
	}

	return m
}

func (g *Generator) relation() model.Relation {
	u := g.rng.NextDouble()
	switch {
	case u < g.cfg.EqChance:
		return model.Equal
	case u < g.cfg.EqChance+g.cfg.GeChance:
		return model.GreaterEqual
	default:
		return model.LessEqual
	}
}

// coefficient returns an integer in [x-128, x+127].
func (g *Generator) coefficient(x int64) rational.Rational {
	return rational.FromInt(g.rng.Step()>>56 + x)
}
