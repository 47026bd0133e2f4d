package model

// EstimatorState represents the training state of a model.
type EstimatorState int

const (
	// NotFitted is the state of a model before any successful Fit call.
	NotFitted EstimatorState = iota
	// Fitted is the state of a model after a successful Fit call.
	Fitted
)

// BaseEstimator is the base struct embedded by every model. It carries the
// two-state (untrained/trained) machine that guards inference calls.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the untrained state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
