package linear

// Option is a function that configures a Perceptron.
type Option func(*Perceptron)

// WithEta sets the learning rate. Expected in (0, 1]; not validated, the
// reference update rule leaves the range to the caller.
func WithEta(eta float64) Option {
	return func(p *Perceptron) {
		p.eta = eta
	}
}

// WithEpochs sets the number of passes over the training data.
func WithEpochs(n int) Option {
	return func(p *Perceptron) {
		p.epochs = n
	}
}

// WithSeed sets the seed of the weight-initialization RNG. Fits with the
// same seed and inputs are bit-identical.
func WithSeed(seed uint64) Option {
	return func(p *Perceptron) {
		p.seed = seed
	}
}

// WithScale sets the standard deviation of the initial weights.
func WithScale(scale float64) Option {
	return func(p *Perceptron) {
		p.scale = scale
	}
}
