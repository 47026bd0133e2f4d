// Package perceptron provides a binary linear classifier trained with the
// classical perceptron update rule, together with the supporting pieces a
// complete training pipeline needs: a CSV data loader with the bundled Iris
// subset, feature standardization, classification metrics and figure
// rendering for convergence curves and decision regions.
//
// The learning core is deliberately small. A Perceptron owns a weight
// vector plus bias, learns online from {-1, +1}-labeled samples in the
// order given, and exposes the per-epoch misclassification counts as a
// convergence diagnostic. Weight initialization is seeded, so training is
// fully reproducible.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/gomlab/perceptron/dataset"
//	    "github.com/gomlab/perceptron/linear"
//	)
//
//	func main() {
//	    X, y, err := dataset.LoadIris()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    clf := linear.NewPerceptron(linear.WithEta(0.1), linear.WithEpochs(10))
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(clf.Misclassifications())
//	}
//
// # Packages
//
//   - linear: the Perceptron classifier
//   - dataset: CSV loading and the bundled Iris subset
//   - preprocessing: feature standardization
//   - metrics: classification metrics
//   - visualize: convergence and decision-region figures
//   - core/model: estimator interfaces and base types
//   - core/parallel: batch-inference fan-out
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// The cmd/perceptron command ties these together into a train-and-plot
// pipeline driven by flags or a TOML config file.
package perceptron
