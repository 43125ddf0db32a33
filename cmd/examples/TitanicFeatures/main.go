package main

import (
	"flag"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexitkes/ai-kaggletools/pkg/dataprep"
	"github.com/alexitkes/ai-kaggletools/pkg/frame"
	"github.com/alexitkes/ai-kaggletools/pkg/model"
	"github.com/alexitkes/ai-kaggletools/pkg/pipeline"
	"github.com/alexitkes/ai-kaggletools/pkg/selection"
	"github.com/alexitkes/ai-kaggletools/pkg/stats"
	"github.com/alexitkes/ai-kaggletools/pkg/titanic"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --train      : Path to the Kaggle Titanic train.csv. Default = train.csv
// --plot       : If given, save the forward-selection score trace as a
//                PNG to this path
// --simplified : Use the simplified 1/0/0.5 rate scheme instead of the
//                leave-one-out means
// --verbose    : Log every candidate subset the selector evaluates
//
// Example:
//   go run main.go --train train.csv --plot trace.png
//
// ---------------------------------------------------------------------
//

// encodeStrings replaces a string column with integer codes in order
// of first appearance.
func encodeStrings(f *frame.Frame, col string) error {
	vals, err := f.Strings(col)
	if err != nil {
		return err
	}
	codes := map[string]int{}
	out := make([]float64, len(vals))
	for i, v := range vals {
		if _, ok := codes[v]; !ok {
			codes[v] = len(codes)
		}
		out[i] = float64(codes[v])
	}
	return f.SetNumeric(col, out)
}

// fillMedian replaces NaN values of a numeric column with the median
// of the known ones.
func fillMedian(f *frame.Frame, col string) error {
	vals, err := f.Numeric(col)
	if err != nil {
		return err
	}
	var known []float64
	for _, v := range vals {
		if !math.IsNaN(v) {
			known = append(known, v)
		}
	}
	med := stats.Median(known)
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = med
		}
	}
	return nil
}

func main() {
	trainPath := flag.String("train", "train.csv", "path to the Titanic train.csv")
	plotPath := flag.String("plot", "", "save the selection score trace as PNG")
	simplified := flag.Bool("simplified", false, "use the 1/0/0.5 rate scheme")
	verbose := flag.Bool("verbose", false, "log every evaluated subset")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	fmt.Println("=== Titanic Feature Engineering Demo ===")

	// Step 1. Load the training table.
	f, err := frame.ReadCSV(*trainPath)
	if err != nil {
		log.Fatalf("load %s: %v", *trainPath, err)
	}
	fmt.Printf("Loaded %d passengers, %d columns.\n", f.Len(), len(f.Columns()))

	// Step 2. Encode Sex as 1 for women, 0 for men (the convention the
	// rate fillers expect) and derive the title code from Name.
	sexes, err := f.Strings("Sex")
	if err != nil {
		log.Fatalf("sex column: %v", err)
	}
	sexCodes := make([]float64, len(sexes))
	for i, s := range sexes {
		if s == "female" {
			sexCodes[i] = 1
		}
	}
	if err := f.SetNumeric("Sex", sexCodes); err != nil {
		log.Fatalf("encode sex: %v", err)
	}

	titles, err := titanic.ExtractTitle(f, nil)
	if err != nil {
		log.Fatalf("extract titles: %v", err)
	}
	if err := f.SetNumeric("Title", titles); err != nil {
		log.Fatalf("set titles: %v", err)
	}

	// Step 3. Squash rarely used embarkation values and encode the
	// column, fill the age gaps.
	if err := dataprep.SquashRareCategories(f, "Embarked", 3, "S"); err != nil {
		log.Fatalf("squash embarked: %v", err)
	}
	if err := fillMedian(f, "Age"); err != nil {
		log.Fatalf("fill age: %v", err)
	}
	if err := fillMedian(f, "Fare"); err != nil {
		log.Fatalf("fill fare: %v", err)
	}

	// Step 4. Group survival rates.
	if err := titanic.FillTicketRates(f, titanic.TicketRateOptions{Simplified: *simplified}); err != nil {
		log.Fatalf("ticket rates: %v", err)
	}
	if err := titanic.FillCabinRates(f, titanic.CabinRateOptions{Simplified: *simplified}); err != nil {
		log.Fatalf("cabin rates: %v", err)
	}
	if err := titanic.FillFamilyRates(f, titanic.FamilyRateOptions{Simplified: *simplified}); err != nil {
		log.Fatalf("family rates: %v", err)
	}
	if err := encodeStrings(f, "Embarked"); err != nil {
		log.Fatalf("encode embarked: %v", err)
	}

	// Step 5. A couple of combined features.
	added, err := dataprep.ExpandPairwise(f, []string{"SibSp", "Parch"}, true, false)
	if err != nil {
		log.Fatalf("pairwise expansion: %v", err)
	}

	y, err := f.Numeric("Survived")
	if err != nil {
		log.Fatalf("target: %v", err)
	}

	candidates := append([]string{
		"Pclass", "Sex", "Age", "Fare", "Embarked", "Title",
		"TicketCount", "TicketRate", "CabinCount", "CabinRate",
		"FamilyRate", "OwnRate", "AgeRank",
	}, added...)

	approx, err := dataprep.MostCorrelated(f, y, candidates)
	if err != nil {
		log.Fatalf("correlated combination: %v", err)
	}
	fmt.Printf("Correlation of the combined feature with Survived: %.4f\n",
		stats.Correlation(approx, y))

	// Step 6. Greedy forward selection with a scaled linear model.
	pipe := pipeline.New(model.NewLinearRegression(), pipeline.NewStandardScaler())
	selected, err := selection.SelectForward(f, candidates, y, pipe, nil)
	if err != nil {
		log.Fatalf("forward selection: %v", err)
	}
	fmt.Printf("Selected features: %v\n", selected)

	// Step 7. Score trace over the selected prefix, optionally plotted.
	cv := selection.DefaultShuffleSplit()
	trace := make([]float64, len(selected))
	for i := 1; i <= len(selected); i++ {
		X, err := f.Matrix(selected[:i]...)
		if err != nil {
			log.Fatalf("matrix: %v", err)
		}
		res, err := selection.CrossValidate(pipe, X, y, cv)
		if err != nil {
			log.Fatalf("cross-validate: %v", err)
		}
		trace[i-1] = res.MeanTest()
		fmt.Printf("  %d features: mean CV R2 = %.4f +/- %.4f\n",
			i, res.MeanTest(), 3*res.StdTest())
	}

	if *plotPath != "" {
		if err := saveTrace(trace, *plotPath); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("Score trace saved to %s\n", *plotPath)
	}
}

// saveTrace plots the mean CV score against the number of selected
// features.
func saveTrace(trace []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Forward feature selection"
	p.X.Label.Text = "Number of features"
	p.Y.Label.Text = "Mean CV R2"

	pts := make(plotter.XYs, len(trace))
	for i, v := range trace {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
