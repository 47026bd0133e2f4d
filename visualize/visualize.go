// Package visualize renders training diagnostics and decision boundaries
// for two-feature binary classifiers. It is a presentation collaborator: it
// consumes a fitted model's Predict and misclassification sequence and
// writes figures to disk, but contains no learning logic.
package visualize

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gomlab/perceptron/core/model"
	"github.com/gomlab/perceptron/pkg/errors"
)

// ClassNames labels the two classes in legends.
type ClassNames struct {
	Negative string // class -1
	Positive string // class +1
}

var (
	negativeColor = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
	positiveColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}

	// Translucent fills for the decision regions so the sample glyphs stay
	// visible on top.
	negativeRegion = color.NRGBA{R: 214, G: 39, B: 40, A: 70}
	positiveRegion = color.NRGBA{R: 31, G: 119, B: 180, A: 70}
)

// FeatureScatter plots the two features of X as a scatter, one glyph style
// per class, and saves the figure as a PNG at path.
func FeatureScatter(X, y mat.Matrix, names ClassNames, title, xLabel, yLabel, path string) error {
	r, c := X.Dims()
	if c != 2 {
		return errors.NewDimensionError("visualize.FeatureScatter", 2, c, 1)
	}
	yr, _ := y.Dims()
	if yr != r {
		return errors.NewDimensionError("visualize.FeatureScatter", r, yr, 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	if err := addClassScatter(p, X, y, names); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, path)
}

// ConvergencePlot plots the misclassification count per epoch, starting at
// epoch 1, and saves the figure as a PNG at path.
func ConvergencePlot(misclass []int, title, path string) error {
	if len(misclass) == 0 {
		return errors.NewValueError("visualize.ConvergencePlot", "empty misclassification sequence")
	}

	pts := make(plotter.XYs, len(misclass))
	for i, m := range misclass {
		pts[i].X = float64(i + 1)
		pts[i].Y = float64(m)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Number of misclassifications"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.Wrap(err, "visualize.ConvergencePlot")
	}
	line.LineStyle.Color = positiveColor
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Color = positiveColor
	p.Add(line, points)

	return save(p, path)
}

// DecisionRegions renders the decision boundary of a fitted two-feature
// classifier: it spans a mesh grid one unit beyond the data extent, asks
// the classifier to label every grid point, draws the two regions as a
// translucent heat map and overlays the training samples. The figure is
// saved as a PNG at path.
func DecisionRegions(clf model.Predictor, X, y mat.Matrix, resolution float64, names ClassNames, title, xLabel, yLabel, path string) error {
	r, c := X.Dims()
	if c != 2 {
		return errors.NewDimensionError("visualize.DecisionRegions", 2, c, 1)
	}
	yr, _ := y.Dims()
	if yr != r {
		return errors.NewDimensionError("visualize.DecisionRegions", r, yr, 0)
	}
	if resolution <= 0 {
		return errors.NewValidationError("resolution", "must be positive", resolution)
	}

	x0Min, x0Max := columnExtent(X, 0)
	x1Min, x1Max := columnExtent(X, 1)
	xs := meshAxis(x0Min-1, x0Max+1, resolution)
	ys := meshAxis(x1Min-1, x1Max+1, resolution)

	// All grid point combinations as one batch, same shape the classifier
	// was trained on.
	combs := mat.NewDense(len(xs)*len(ys), 2, nil)
	for i, x1 := range ys {
		for j, x0 := range xs {
			combs.Set(i*len(xs)+j, 0, x0)
			combs.Set(i*len(xs)+j, 1, x1)
		}
	}

	labels, err := clf.Predict(combs)
	if err != nil {
		return errors.Wrap(err, "visualize.DecisionRegions")
	}

	z := mat.NewDense(len(ys), len(xs), nil)
	for i := range ys {
		for j := range xs {
			z.Set(i, j, labels.At(i*len(xs)+j, 0))
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	regions := plotter.NewHeatMap(meshGrid{xs: xs, ys: ys, z: z}, regionPalette{})
	p.Add(regions)

	if err := addClassScatter(p, X, y, names); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.X.Min, p.X.Max = x0Min-1, x0Max+1
	p.Y.Min, p.Y.Max = x1Min-1, x1Max+1

	return save(p, path)
}

// addClassScatter adds one scatter per class with a plus glyph, legend
// entries included.
func addClassScatter(p *plot.Plot, X, y mat.Matrix, names ClassNames) error {
	r, _ := X.Dims()
	var negative, positive plotter.XYs
	for i := 0; i < r; i++ {
		pt := plotter.XY{X: X.At(i, 0), Y: X.At(i, 1)}
		if y.At(i, 0) == -1 {
			negative = append(negative, pt)
		} else {
			positive = append(positive, pt)
		}
	}

	for _, class := range []struct {
		pts   plotter.XYs
		name  string
		color color.Color
	}{
		{negative, names.Negative, negativeColor},
		{positive, names.Positive, positiveColor},
	} {
		if len(class.pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(class.pts)
		if err != nil {
			return errors.Wrap(err, "visualize: scatter")
		}
		scatter.GlyphStyle.Shape = draw.PlusGlyph{}
		scatter.GlyphStyle.Color = class.color
		p.Add(scatter)
		p.Legend.Add(class.name, scatter)
	}
	return nil
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "visualize: saving %s", path)
	}
	return nil
}

func columnExtent(X mat.Matrix, col int) (min, max float64) {
	r, _ := X.Dims()
	min, max = X.At(0, col), X.At(0, col)
	for i := 1; i < r; i++ {
		v := X.At(i, col)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func meshAxis(min, max, resolution float64) []float64 {
	var axis []float64
	for v := min; v < max; v += resolution {
		axis = append(axis, v)
	}
	return axis
}

// meshGrid adapts predicted grid labels to plotter.GridXYZ.
type meshGrid struct {
	xs, ys []float64
	z      *mat.Dense
}

func (g meshGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g meshGrid) X(c int) float64    { return g.xs[c] }
func (g meshGrid) Y(r int) float64    { return g.ys[r] }
func (g meshGrid) Z(c, r int) float64 { return g.z.At(r, c) }

// regionPalette maps the two class labels to translucent fills: -1 (the
// minimum) to the negative color, +1 to the positive color.
type regionPalette struct{}

func (regionPalette) Colors() []color.Color {
	return []color.Color{negativeRegion, positiveRegion}
}
