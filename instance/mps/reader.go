// Package mps loads linear programs from MPS files through GLPK.
package mps

import (
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/exactlp/instance"
	"q.log/exactlp/model"
	"q.log/exactlp/rational"
)

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
	maximize bool
}

// NewReader returns a Reader for filename. Fixed MPS carries no objective
// sense, so the caller chooses it.
func NewReader(filename string, maximize bool) *Reader {
	return &Reader{
		filename: filename,
		maximize: maximize,
	}
}

// ConstructModelFromFile returns the model in the file with every float
// coefficient converted exactly. Column bounds become extra rows after the
// file's own rows.
func (r *Reader) ConstructModelFromFile() (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "read %s", r.filename)
	}

	numCols := lp.NumCols()

	//glpk indexes rows and columns from 1
	objective := make([]rational.Rational, numCols)
	for c := 1; c <= numCols; c++ {
		v, err := rational.FromFloat64(lp.ObjCoef(c))
		if err != nil {
			return nil, errors.Wrapf(err, "objective coefficient %d", c)
		}
		objective[c-1] = v
	}
	m := model.NewModel(objective, r.maximize)

	for row := 1; row <= lp.NumRows(); row++ {
		rowVec := make([]float64, numCols)
		idxs, vals := lp.MatRow(row)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[i]
		}

		rows, err := instance.RowConstraints(rowVec, lp.RowLB(row), lp.RowUB(row))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}
		m.Rows = append(m.Rows, rows...)
	}

	for c := 1; c <= numCols; c++ {
		rows, err := instance.ColumnConstraints(c-1, numCols, lp.ColLB(c), lp.ColUB(c))
		if err != nil {
			return nil, err
		}
		m.Rows = append(m.Rows, rows...)
	}

	return m, m.Validate()
}
