package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/perceptron/dataset"
	"github.com/gomlab/perceptron/linear"
	"github.com/gomlab/perceptron/pkg/errors"
	"github.com/gomlab/perceptron/pkg/log"
	"github.com/gomlab/perceptron/preprocessing"
	"github.com/gomlab/perceptron/visualize"
)

var trainFlags struct {
	configPath string

	eta         float64
	epochs      int
	seed        uint64
	scale       float64
	standardize bool

	dataPath      string
	featureCols   []int
	labelCol      int
	positiveLabel string
	negativeLabel string

	outDir     string
	resolution float64
	noPlots    bool
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier and render diagnostics",
	RunE:  runTrain,
}

func init() {
	flags := trainCmd.Flags()
	flags.StringVar(&trainFlags.configPath, "config", "", "TOML config file; flags override its values")

	flags.Float64Var(&trainFlags.eta, "eta", 0.1, "learning rate")
	flags.IntVar(&trainFlags.epochs, "epochs", 10, "number of training epochs")
	flags.Uint64Var(&trainFlags.seed, "seed", 1, "weight initialization seed")
	flags.Float64Var(&trainFlags.scale, "scale", 0.01, "standard deviation of the initial weights")
	flags.BoolVar(&trainFlags.standardize, "standardize", false, "standardize features before training")

	flags.StringVar(&trainFlags.dataPath, "data", "", "training CSV; empty selects the bundled Iris subset")
	flags.IntSliceVar(&trainFlags.featureCols, "feature-cols", []int{0, 2}, "zero-based feature column indices")
	flags.IntVar(&trainFlags.labelCol, "label-col", 4, "zero-based label column index")
	flags.StringVar(&trainFlags.positiveLabel, "positive-label", "Iris-versicolor", "raw label mapped to +1")
	flags.StringVar(&trainFlags.negativeLabel, "negative-label", "Iris-setosa", "raw label mapped to -1")

	flags.StringVar(&trainFlags.outDir, "out-dir", "figures", "directory for rendered figures")
	flags.Float64Var(&trainFlags.resolution, "resolution", 0.02, "mesh resolution of the decision-region figure")
	flags.BoolVar(&trainFlags.noPlots, "no-plots", false, "skip figure rendering")
}

func runTrain(cmd *cobra.Command, _ []string) error {
	log.SetLevel(toLevel(logLevel))
	logger := log.GetLoggerWithName("perceptron")

	config, err := readConfig(trainFlags.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &config)

	X, y, err := loadData(config.Data)
	if err != nil {
		return err
	}
	nSamples, nFeatures := X.Dims()
	logger.Info("data loaded",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
	)

	var features mat.Matrix = X
	if config.Standardize {
		scaler := preprocessing.NewStandardScaler()
		features, err = scaler.FitTransform(X)
		if err != nil {
			return err
		}
		logger.Info("features standardized", log.OperationKey, log.OperationTransform)
	}

	clf := linear.NewPerceptron(
		linear.WithEta(config.Eta),
		linear.WithEpochs(config.Epochs),
		linear.WithSeed(config.Seed),
		linear.WithScale(config.Scale),
	)

	start := time.Now()
	if err := clf.Fit(features, y); err != nil {
		return err
	}
	misclass := clf.Misclassifications()

	accuracy, err := clf.Score(features, y)
	if err != nil {
		return err
	}
	logger.Info("training finished",
		log.ModelNameKey, "Perceptron",
		log.OperationKey, log.OperationFit,
		log.LearningRateKey, config.Eta,
		log.EpochKey, config.Epochs,
		log.RandomSeedKey, config.Seed,
		log.MisclassificationsKey, misclass[len(misclass)-1],
		log.AccuracyKey, accuracy,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	if trainFlags.noPlots {
		return nil
	}
	return renderFigures(clf, features, y, misclass, config, logger)
}

// applyFlagOverrides copies every flag the user set on the command line
// over the config file values.
func applyFlagOverrides(cmd *cobra.Command, config *Config) {
	set := cmd.Flags().Changed
	if set("eta") {
		config.Eta = trainFlags.eta
	}
	if set("epochs") {
		config.Epochs = trainFlags.epochs
	}
	if set("seed") {
		config.Seed = trainFlags.seed
	}
	if set("scale") {
		config.Scale = trainFlags.scale
	}
	if set("standardize") {
		config.Standardize = trainFlags.standardize
	}
	if set("data") {
		config.Data.Path = trainFlags.dataPath
	}
	if set("feature-cols") {
		config.Data.FeatureCols = trainFlags.featureCols
	}
	if set("label-col") {
		config.Data.LabelCol = trainFlags.labelCol
	}
	if set("positive-label") {
		config.Data.PositiveLabel = trainFlags.positiveLabel
	}
	if set("negative-label") {
		config.Data.NegativeLabel = trainFlags.negativeLabel
	}
	if set("out-dir") {
		config.Output.Dir = trainFlags.outDir
	}
	if set("resolution") {
		config.Output.Resolution = trainFlags.resolution
	}
}

func loadData(data DataConfig) (*mat.Dense, *mat.VecDense, error) {
	if data.Path == "" {
		return dataset.LoadIris()
	}
	return dataset.ReadCSVFile(data.Path, dataset.CSVOptions{
		FeatureCols: data.FeatureCols,
		LabelCol:    data.LabelCol,
		Labels: map[string]float64{
			data.NegativeLabel: -1,
			data.PositiveLabel: 1,
		},
	})
}

func renderFigures(clf *linear.Perceptron, X, y mat.Matrix, misclass []int, config Config, logger log.Logger) error {
	if err := os.MkdirAll(config.Output.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", config.Output.Dir)
	}

	names := visualize.ClassNames{
		Negative: config.Data.NegativeLabel,
		Positive: config.Data.PositiveLabel,
	}

	convergence := filepath.Join(config.Output.Dir, "convergence.png")
	if err := visualize.ConvergencePlot(misclass, "Number of misclassifications per epoch", convergence); err != nil {
		return err
	}

	_, nFeatures := X.Dims()
	if nFeatures != 2 {
		logger.Warn("skipping scatter and decision-region figures: not a two-feature dataset",
			log.FeaturesKey, nFeatures)
		logger.Info("figures written", "dir", config.Output.Dir)
		return nil
	}

	scatter := filepath.Join(config.Output.Dir, "scatter.png")
	if err := visualize.FeatureScatter(X, y, names, "Scatter plot of the features", "Feature 0", "Feature 1", scatter); err != nil {
		return err
	}

	regions := filepath.Join(config.Output.Dir, "decision_regions.png")
	if err := visualize.DecisionRegions(clf, X, y, config.Output.Resolution, names,
		"Decision boundary and training sample", "Feature 0", "Feature 1", regions); err != nil {
		return err
	}

	logger.Info("figures written", "dir", config.Output.Dir)
	return nil
}

func toLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
