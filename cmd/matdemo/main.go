// SPDX-License-Identifier: MIT

// Command matdemo walks the engine through its main surfaces on small fixed
// matrices: arithmetic, broadcasting, statistics, inversion, magic squares
// and a gradient-descent run whose cost history is written to a PNG chart.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/nummat/mat"
	"github.com/katalvlaran/nummat/regression"
)

func main() {
	chartPath := flag.String("chart", "cost_history.png", "output path for the cost-history chart")
	flag.Parse()

	if err := run(*chartPath); err != nil {
		log.Fatal(err)
	}
}

func run(chartPath string) error {
	if err := demoArithmetic(); err != nil {
		return err
	}
	if err := demoStatistics(); err != nil {
		return err
	}
	if err := demoInverse(); err != nil {
		return err
	}
	if err := demoMagic(); err != nil {
		return err
	}

	return demoRegression(chartPath)
}

func demoArithmetic() error {
	a, err := mat.FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return err
	}
	b, err := mat.FromRows([][]float64{{2, 0}, {1, 2}})
	if err != nil {
		return err
	}

	sum, err := mat.Add(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("A + B =\n%s\n", sum)

	prod, err := mat.Mul(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("A x B =\n%s\n", prod)

	bias, err := mat.FromRows([][]float64{{10, 20}})
	if err != nil {
		return err
	}
	shifted, err := mat.ElementAdd(a, bias)
	if err != nil {
		return err
	}
	fmt.Printf("A + row broadcast =\n%s\n", shifted)

	return nil
}

func demoStatistics() error {
	m, err := mat.FromRows([][]float64{{2, 1, 3}, {7, 1, 9}, {1, 8, 1}, {3, 7, 4}})
	if err != nil {
		return err
	}
	fmt.Printf("X =\n%s\n", m)

	mean, err := mat.Mean(m, mat.DimCols)
	if err != nil {
		return err
	}
	fmt.Printf("column means =\n%s\n", mean)

	med, err := mat.Median(m, mat.DimCols)
	if err != nil {
		return err
	}
	fmt.Printf("column medians =\n%s\n", med)

	sd, err := mat.StdDev(m, mat.DimCols)
	if err != nil {
		return err
	}
	fmt.Printf("column standard deviations =\n%s\n", sd)

	return nil
}

func demoInverse() error {
	m, err := mat.FromRows([][]float64{{4, 7}, {2, 6}})
	if err != nil {
		return err
	}
	inv, err := mat.Inverse(m)
	if err != nil {
		return err
	}
	fmt.Printf("inverse of\n%sis\n%s\n", m, inv)

	check, err := mat.Mul(m, inv)
	if err != nil {
		return err
	}
	fmt.Printf("product with the inverse =\n%s\n", check)

	return nil
}

func demoMagic() error {
	for n := 3; n <= 10; n++ {
		square, err := mat.Magic(n)
		if err != nil {
			return err
		}
		ok, err := mat.IsMagic(square)
		if err != nil {
			return err
		}
		fmt.Printf("magic square of order %d (valid: %t)\n%s\n", n, ok, square)
	}

	return nil
}

func demoRegression(chartPath string) error {
	x, err := mat.FromRows([][]float64{{2, 1, 3}, {7, 1, 9}, {1, 8, 1}, {3, 7, 4}})
	if err != nil {
		return err
	}
	y, err := mat.FromRows([][]float64{{2}, {5}, {5}, {6}})
	if err != nil {
		return err
	}
	theta, err := mat.NewZeros(3, 1)
	if err != nil {
		return err
	}

	final, history, err := regression.GradientDescent(x, y, theta, 0.01, 100)
	if err != nil {
		return err
	}
	fmt.Printf("gradient descent theta =\n%s\n", final)
	fmt.Printf("final cost = %.6f\n", history[len(history)-1])

	if err := saveCostChart(chartPath, history); err != nil {
		return err
	}
	fmt.Printf("cost history chart written to %s\n", chartPath)

	return nil
}

// saveCostChart renders the per-iteration cost as a line chart.
func saveCostChart(path string, history []float64) error {
	p := plot.New()
	p.Title.Text = "Gradient descent cost history"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "cost"

	pts := make(plotter.XYs, len(history))
	for i, c := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = c
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
