package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"q.log/exactlp/instance/mps"
	"q.log/exactlp/simplex"
)

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE.mps",
		Short: "Solve the linear program in an MPS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.WithField("file", args[0])
			m, err := mps.NewReader(args[0], v.GetBool("maximize")).ConstructModelFromFile()
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"variables":   m.NumCols,
				"constraints": m.NumRows(),
			}).Info("loaded model")

			out := cmd.OutOrStdout()
			if v.GetBool("print-model") {
				m.Print(out)
			}

			s := simplex.NewSolver(v.GetInt("max-steps"), v.GetBool("debug"))
			s.Trace = out
			outcome, err := s.Solve(m)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"status": outcome.Status(),
				"steps":  s.Steps(),
			}).Info("solved")

			printOutcome(out, outcome)
			return nil
		},
	}

	cmd.Flags().Bool("maximize", false, "maximize the objective instead of minimizing it")
	cmd.Flags().Bool("print-model", false, "print a float approximation of the model")
	return cmd
}

func printOutcome(w io.Writer, outcome simplex.Outcome) {
	switch o := outcome.(type) {
	case simplex.Optimal:
		fmt.Fprintf(w, "status=%v\nobjective=%v (%g)\n", o.Status(), o.Value, o.Value.Float64())
		for i, x := range o.Solution {
			if x.IsZero() {
				continue
			}
			fmt.Fprintf(w, "x%d=%v\n", i, x)
		}
	case simplex.Infeasible, simplex.Unbounded, simplex.TimedOut:
		fmt.Fprintf(w, "status=%v\n", o.Status())
	}
}
