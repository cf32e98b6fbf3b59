// Package benchmark solves batches of generated linear programs and checks
// the aggregated outcome against reference values.
package benchmark

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"q.log/exactlp/instance"
	"q.log/exactlp/model"
	"q.log/exactlp/rational"
	"q.log/exactlp/simplex"
)

const (
	DefaultPrograms = 10
	DefaultSeed     = 42
	DefaultMaxSteps = 200
)

// ErrValidation is returned when a summary disagrees with the expected values.
var ErrValidation = errors.New("benchmark validation failed")

// expectedSum is the reference sum of optimal values for DefaultPrograms
// programs from DefaultSeed with the default generator and step budget.
var expectedSum = rational.MustParse("2890528279780327546890920560296572053017582970462229169962737102270355639494297269989090972103025110388363/" +
	"2775065187046933750458072200920143470609500555385545496730279581456018896727786579265533127822441171840")

const (
	expectedOptimal    int64 = 3
	expectedInfeasible int64 = 7
	expectedUnbounded  int64 = 0
	expectedTimedOut   int64 = 0
)

// Config describes one benchmark run.
type Config struct {
	Programs  int
	Seed      int64
	MaxSteps  int
	Generator instance.GeneratorConfig

	// Workers bounds the number of concurrent solves.
	Workers int

	// Debug enables the solver's tableau trace. Tracing forces a single worker
	// so that dumps of different programs do not interleave.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Programs:  DefaultPrograms,
		Seed:      DefaultSeed,
		MaxSteps:  DefaultMaxSteps,
		Generator: instance.DefaultGeneratorConfig(),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

func (c Config) Validate() error {
	if c.Programs <= 0 {
		return errors.Errorf("programs must be positive, got %d", c.Programs)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("max steps must not be negative, got %d", c.MaxSteps)
	}
	return errors.Wrap(c.Generator.Validate(), "generator")
}

// isDefault reports whether the reference values apply to c.
func (c Config) isDefault() bool {
	return c.Programs == DefaultPrograms &&
		c.Seed == DefaultSeed &&
		c.MaxSteps == DefaultMaxSteps &&
		c.Generator == instance.DefaultGeneratorConfig()
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Optimal    int64
	Infeasible int64
	Unbounded  int64
	TimedOut   int64

	// Sum is the exact sum of the optimal objective values.
	Sum rational.Rational
}

// Total returns the number of classified programs.
func (s Summary) Total() int64 {
	return s.Optimal + s.Infeasible + s.Unbounded + s.TimedOut
}

// Add records one outcome. It panics on a nil or unknown outcome.
func (s *Summary) Add(out simplex.Outcome) {
	switch o := out.(type) {
	case simplex.Optimal:
		s.Optimal++
		s.Sum = s.Sum.Add(o.Value)
	case simplex.Infeasible:
		s.Infeasible++
	case simplex.Unbounded:
		s.Unbounded++
	case simplex.TimedOut:
		s.TimedOut++
	default:
		panic(fmt.Sprintf("benchmark: unexpected outcome %T", out))
	}
}

// Validate compares s against the reference values when cfg is the default
// configuration, and otherwise only checks that every program was classified.
func (s Summary) Validate(cfg Config) error {
	if !cfg.isDefault() {
		if s.Total() != int64(cfg.Programs) {
			return errors.Wrapf(ErrValidation, "programs run: got %d, want %d", s.Total(), cfg.Programs)
		}
		return nil
	}

	if s.Sum.Cmp(expectedSum) != 0 {
		return errors.Wrapf(ErrValidation, "sum: got %v, want %v", s.Sum, expectedSum)
	}
	checks := []struct {
		name      string
		got, want int64
	}{
		{"optimal", s.Optimal, expectedOptimal},
		{"infeasible", s.Infeasible, expectedInfeasible},
		{"unbounded", s.Unbounded, expectedUnbounded},
		{"timed out", s.TimedOut, expectedTimedOut},
	}
	for _, c := range checks {
		if c.got != c.want {
			return errors.Wrapf(ErrValidation, "%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
	return nil
}

// Run generates cfg.Programs programs from a single generator and solves them
// concurrently, one solver per program. Outcomes are aggregated in program
// order, so the summary does not depend on scheduling.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, errors.Wrap(err, "invalid config")
	}

	gen := instance.NewGenerator(cfg.Generator, cfg.Seed)
	programs := make([]*model.Model, cfg.Programs)
	for i := range programs {
		programs[i] = gen.Next()
	}

	workers := cfg.Workers
	if workers <= 0 || cfg.Debug {
		workers = 1
	}

	outcomes := make([]simplex.Outcome, len(programs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range programs {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := simplex.NewSolver(cfg.MaxSteps, cfg.Debug)
			out, err := s.Solve(m)
			if err != nil {
				return errors.Wrapf(err, "program %d", i)
			}
			log.WithFields(logrus.Fields{
				"program": i,
				"status":  out.Status(),
				"steps":   s.Steps(),
			}).Debug("solved program")
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, out := range outcomes {
		sum.Add(out)
	}
	log.WithFields(logrus.Fields{
		"optimal":    sum.Optimal,
		"infeasible": sum.Infeasible,
		"unbounded":  sum.Unbounded,
		"timed_out":  sum.TimedOut,
	}).Info("benchmark finished")
	return sum, nil
}
