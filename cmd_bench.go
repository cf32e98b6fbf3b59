package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"q.log/exactlp/benchmark"
)

func newBenchCommand(v *viper.Viper) *cobra.Command {
	defaults := benchmark.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve a batch of generated linear programs and validate the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := benchConfig(v)
			log := logrus.WithFields(logrus.Fields{
				"programs": cfg.Programs,
				"seed":     cfg.Seed,
				"workers":  cfg.Workers,
			})
			log.Info("running benchmark")

			sum, err := benchmark.Run(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "optimal=%d infeasible=%d unbounded=%d timed_out=%d\nsum=%v\n",
				sum.Optimal, sum.Infeasible, sum.Unbounded, sum.TimedOut, sum.Sum)

			if v.GetBool("validate") {
				if err := sum.Validate(cfg); err != nil {
					return err
				}
				log.Info("validation passed")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("programs", defaults.Programs, "number of linear programs to solve")
	flags.Int64("seed", defaults.Seed, "seed of the program generator")
	flags.Int("variables", defaults.Generator.Variables, "decision variables per program")
	flags.Int("constraints", defaults.Generator.Constraints, "constraints per program")
	flags.Float64("nonzero-chance", defaults.Generator.NonzeroChance, "probability of a nonzero constraint coefficient")
	flags.Float64("eq-chance", defaults.Generator.EqChance, "probability of an = constraint")
	flags.Float64("ge-chance", defaults.Generator.GeChance, "probability of a >= constraint")
	flags.Int("workers", defaults.Workers, "concurrent solves")
	flags.Bool("validate", true, "check the summary against reference values")
	return cmd
}

func benchConfig(v *viper.Viper) benchmark.Config {
	cfg := benchmark.DefaultConfig()
	cfg.Programs = v.GetInt("programs")
	cfg.Seed = v.GetInt64("seed")
	cfg.MaxSteps = v.GetInt("max-steps")
	cfg.Workers = v.GetInt("workers")
	cfg.Debug = v.GetBool("debug")
	cfg.Generator.Variables = v.GetInt("variables")
	cfg.Generator.Constraints = v.GetInt("constraints")
	cfg.Generator.NonzeroChance = v.GetFloat64("nonzero-chance")
	cfg.Generator.EqChance = v.GetFloat64("eq-chance")
	cfg.Generator.GeChance = v.GetFloat64("ge-chance")
	return cfg
}
