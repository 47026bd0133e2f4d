package dataset

import (
	"strings"
	"testing"
)

func TestLoadIris(t *testing.T) {
	X, y, err := LoadIris()
	if err != nil {
		t.Fatalf("LoadIris failed: %v", err)
	}

	r, c := X.Dims()
	if r != 100 || c != 2 {
		t.Fatalf("expected a 100×2 feature matrix, got %d×%d", r, c)
	}
	if y.Len() != 100 {
		t.Fatalf("expected 100 labels, got %d", y.Len())
	}

	// First record of iris.data: 5.1,3.5,1.4,0.2,Iris-setosa.
	if X.At(0, 0) != 5.1 || X.At(0, 1) != 1.4 {
		t.Errorf("unexpected first sample: (%g, %g)", X.At(0, 0), X.At(0, 1))
	}

	negatives := 0
	for i := 0; i < y.Len(); i++ {
		switch y.AtVec(i) {
		case -1:
			negatives++
			if i >= 50 {
				t.Errorf("row %d should be versicolor (+1)", i)
			}
		case 1:
			if i < 50 {
				t.Errorf("row %d should be setosa (-1)", i)
			}
		default:
			t.Fatalf("label outside {-1,+1} at row %d: %g", i, y.AtVec(i))
		}
	}
	if negatives != 50 {
		t.Errorf("expected 50 setosa samples, got %d", negatives)
	}
}

func TestReadCSVNumericLabels(t *testing.T) {
	in := "1.0,2.0,1\n3.0,4.0,-1\n"
	X, y, err := ReadCSV(strings.NewReader(in), CSVOptions{
		FeatureCols: []int{0, 1},
		LabelCol:    2,
	})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if r, c := X.Dims(); r != 2 || c != 2 {
		t.Fatalf("expected 2×2 features, got %d×%d", r, c)
	}
	if y.AtVec(0) != 1 || y.AtVec(1) != -1 {
		t.Errorf("unexpected labels: %v, %v", y.AtVec(0), y.AtVec(1))
	}
}

func TestReadCSVMaxRows(t *testing.T) {
	in := "1,0,1\n2,0,1\n3,0,-1\n"
	X, _, err := ReadCSV(strings.NewReader(in), CSVOptions{
		FeatureCols: []int{0, 1},
		LabelCol:    2,
		MaxRows:     2,
	})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if r, _ := X.Dims(); r != 2 {
		t.Errorf("expected 2 rows, got %d", r)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts CSVOptions
	}{
		{
			name: "unknown label",
			in:   "1,2,Iris-borealis\n",
			opts: CSVOptions{FeatureCols: []int{0, 1}, LabelCol: 2, Labels: map[string]float64{"Iris-setosa": -1}},
		},
		{
			name: "label outside domain",
			in:   "1,2,3\n",
			opts: CSVOptions{FeatureCols: []int{0, 1}, LabelCol: 2},
		},
		{
			name: "non-numeric feature",
			in:   "a,2,1\n",
			opts: CSVOptions{FeatureCols: []int{0, 1}, LabelCol: 2},
		},
		{
			name: "feature column out of range",
			in:   "1,2\n",
			opts: CSVOptions{FeatureCols: []int{0, 5}, LabelCol: 1},
		},
		{
			name: "empty input",
			in:   "",
			opts: CSVOptions{FeatureCols: []int{0}, LabelCol: 1},
		},
		{
			name: "no feature columns",
			in:   "1,2,1\n",
			opts: CSVOptions{LabelCol: 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ReadCSV(strings.NewReader(tc.in), tc.opts); err == nil {
				t.Errorf("expected an error for %s", tc.name)
			}
		})
	}
}
