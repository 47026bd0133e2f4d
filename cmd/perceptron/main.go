// Command perceptron trains a binary perceptron classifier on a two-feature
// CSV dataset (the bundled Iris subset by default), reports the training
// accuracy and writes convergence and decision-boundary figures.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perceptron",
	Short: "Train and visualize a binary perceptron classifier",
	Long: `perceptron trains Rosenblatt's single-layer classifier with the
online mistake-driven update rule and renders the learned linear decision
boundary. Without --data it uses the bundled two-class Iris subset
(sepal length and petal length, setosa vs. versicolor).`,
	SilenceUsage: true,
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"minimum log level (debug, info, warn, error)")
	rootCmd.AddCommand(trainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
