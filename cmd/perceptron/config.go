package main

import (
	"github.com/BurntSushi/toml"

	"github.com/gomlab/perceptron/pkg/errors"
)

// Config is the TOML representation of a training run. Flags override any
// value set here.
type Config struct {
	Eta         float64 `toml:"eta"`
	Epochs      int     `toml:"epochs"`
	Seed        uint64  `toml:"seed"`
	Scale       float64 `toml:"scale"`
	Standardize bool    `toml:"standardize"`

	Data   DataConfig   `toml:"data"`
	Output OutputConfig `toml:"output"`
}

// DataConfig describes where the training data comes from. An empty Path
// selects the bundled Iris subset.
type DataConfig struct {
	Path          string `toml:"path"`
	FeatureCols   []int  `toml:"feature_cols"`
	LabelCol      int    `toml:"label_col"`
	PositiveLabel string `toml:"positive_label"`
	NegativeLabel string `toml:"negative_label"`
}

// OutputConfig controls figure rendering.
type OutputConfig struct {
	Dir        string  `toml:"dir"`
	Resolution float64 `toml:"resolution"`
}

func defaultConfig() Config {
	return Config{
		Eta:    0.1,
		Epochs: 10,
		Seed:   1,
		Scale:  0.01,
		Data: DataConfig{
			FeatureCols:   []int{0, 2},
			LabelCol:      4,
			PositiveLabel: "Iris-versicolor",
			NegativeLabel: "Iris-setosa",
		},
		Output: OutputConfig{
			Dir:        "figures",
			Resolution: 0.02,
		},
	}
}

func readConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	return config, nil
}
