// Package dataset loads feature matrices and binary label vectors for the
// classifiers in this library. It is a data-acquisition collaborator: it
// produces the inputs that linear.Perceptron consumes but carries no
// learning logic of its own.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/perceptron/pkg/errors"
)

// CSVOptions describes how to extract a feature matrix and a {-1, +1} label
// vector from a headerless CSV stream.
type CSVOptions struct {
	// FeatureCols are the zero-based column indices to read as features,
	// in order.
	FeatureCols []int

	// LabelCol is the zero-based column index of the class label.
	LabelCol int

	// Labels maps raw label strings to -1 or +1. When nil, the label column
	// is parsed as a number and must already be -1 or +1.
	Labels map[string]float64

	// MaxRows limits how many records are read. Zero means all.
	MaxRows int
}

// ReadCSV reads records from r into an n×len(FeatureCols) feature matrix
// and an n×1 label vector with values in {-1, +1}.
func ReadCSV(r io.Reader, opts CSVOptions) (*mat.Dense, *mat.VecDense, error) {
	if len(opts.FeatureCols) == 0 {
		return nil, nil, errors.NewValueError("dataset.ReadCSV", "no feature columns specified")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // width is validated per record below

	var features []float64
	var labels []float64

	row := 0
	for {
		if opts.MaxRows > 0 && row >= opts.MaxRows {
			break
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "dataset.ReadCSV: record %d", row)
		}

		for _, col := range opts.FeatureCols {
			if col >= len(record) {
				return nil, nil, errors.NewValueError("dataset.ReadCSV",
					fmt.Sprintf("record %d has %d fields, feature column %d out of range", row, len(record), col))
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "dataset.ReadCSV: record %d column %d", row, col)
			}
			features = append(features, v)
		}

		if opts.LabelCol >= len(record) {
			return nil, nil, errors.NewValueError("dataset.ReadCSV",
				fmt.Sprintf("record %d has %d fields, label column %d out of range", row, len(record), opts.LabelCol))
		}
		label, err := parseLabel(strings.TrimSpace(record[opts.LabelCol]), opts.Labels, row)
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, label)
		row++
	}

	if row == 0 {
		return nil, nil, errors.NewModelError("dataset.ReadCSV", "empty data", errors.ErrEmptyData)
	}

	X := mat.NewDense(row, len(opts.FeatureCols), features)
	y := mat.NewVecDense(row, labels)
	return X, y, nil
}

// ReadCSVFile is ReadCSV over the contents of a file.
func ReadCSVFile(path string, opts CSVOptions) (*mat.Dense, *mat.VecDense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dataset.ReadCSVFile: %s", path)
	}
	defer f.Close()

	return ReadCSV(f, opts)
}

func parseLabel(raw string, mapping map[string]float64, row int) (float64, error) {
	if mapping != nil {
		label, ok := mapping[raw]
		if !ok {
			return 0, errors.NewValueError("dataset.ReadCSV",
				fmt.Sprintf("unknown label %q at record %d", raw, row))
		}
		if label != -1 && label != 1 {
			return 0, errors.NewValueError("dataset.ReadCSV",
				fmt.Sprintf("label mapping for %q must be -1 or +1, got %g", raw, label))
		}
		return label, nil
	}

	label, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "dataset.ReadCSV: label at record %d", row)
	}
	if label != -1 && label != 1 {
		return 0, errors.NewValueError("dataset.ReadCSV",
			fmt.Sprintf("labels must be -1 or +1, got %g at record %d", label, row))
	}
	return label, nil
}
