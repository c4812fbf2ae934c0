package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Regression holds the ordinary least squares fit of y on x
type Regression struct {
	Count     int
	Slope     float64
	Intercept float64
	RSquared  float64
	StdErr    float64 // standard error of the slope
	PValue    float64 // two-tailed p-value for slope != 0
}

// LinRegress fits y = intercept + slope*x by ordinary least squares
func LinRegress(x, y []float64) Regression {
	n := len(x)
	if n < 3 || n != len(y) {
		return Regression{
			Count:     n,
			Slope:     math.NaN(),
			Intercept: math.NaN(),
			RSquared:  math.NaN(),
			StdErr:    math.NaN(),
			PValue:    math.NaN(),
		}
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, intercept, slope)

	// Residual and predictor sums of squares for the slope standard error
	meanX := stat.Mean(x, nil)
	var ssRes, ssX float64
	for i := range x {
		resid := y[i] - (intercept + slope*x[i])
		ssRes += resid * resid
		dx := x[i] - meanX
		ssX += dx * dx
	}

	var stdErr, pValue float64
	if ssX == 0 {
		stdErr = math.NaN()
		pValue = math.NaN()
	} else if ssRes == 0 {
		// Perfect fit
		stdErr = 0
		pValue = 0
	} else {
		stdErr = math.Sqrt(ssRes/float64(n-2)) / math.Sqrt(ssX)
		pValue = twoTailedT(slope/stdErr, float64(n-2))
	}

	return Regression{
		Count:     n,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		StdErr:    stdErr,
		PValue:    pValue,
	}
}
