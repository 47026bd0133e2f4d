// Standard attribute keys for machine learning log records. Using these
// keys keeps log output consistent across packages and easy to filter.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") for structured log analysis.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model, e.g. "Perceptron".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "linear", "preprocessing", "dataset"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training and evaluation metrics.
const (
	// EpochKey is the current or total epoch count of a training run.
	EpochKey = "training.epoch"

	// MisclassificationsKey is the number of weight updates (mistakes) in a
	// training epoch.
	MisclassificationsKey = "training.misclassifications"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Hyperparameters and configuration.
const (
	// LearningRateKey records the learning rate of the update rule.
	LearningRateKey = "hyperparams.learning_rate"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationScore     = "score"
)
