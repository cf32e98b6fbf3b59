package simplex

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// printTableau writes the basis, the exact tableau and a float approximation of it.
func printTableau(w io.Writer, t *tableau, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	fmt.Fprintf(w, "Basis: %v\n", t.basis)

	var sb strings.Builder
	for _, row := range t.m {
		for _, v := range row {
			sb.WriteString(v.String())
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())

	approx := mat.NewDense(t.rows, t.cols, nil)
	for i, row := range t.m {
		for j, v := range row {
			approx.Set(i, j, v.Float64())
		}
	}
	fmt.Fprintf(w, "T ~ %v\n", mat.Formatted(approx, mat.Prefix("    "), mat.Squeeze()))
}
