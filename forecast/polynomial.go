package forecast

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/fabioo29/covid-cases-prediction/errs"
)

// Polynomial is a fitted polynomial with coefficients ordered highest
// degree first, the same convention the fit returns them in.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial creates a polynomial from highest-degree-first coefficients.
func NewPolynomial(coeffs []float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, fmt.Errorf("%w: polynomial needs at least one coefficient", errs.ErrInvalidParameter)
	}

	owned := make([]float64, len(coeffs))
	copy(owned, coeffs)

	return Polynomial{coeffs: owned}, nil
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p Polynomial) Coefficients() []float64 {
	coeffs := make([]float64, len(p.coeffs))
	copy(coeffs, p.coeffs)

	return coeffs
}

// At evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) At(x float64) float64 {
	var v float64
	for _, c := range p.coeffs {
		v = v*x + c
	}

	return v
}

// Sample evaluates the polynomial at n evenly spaced points across
// [min, max], for callers that render the fitted curve. Returns the x and y
// samples in matching order. n below 2 yields the two endpoints.
func (p Polynomial) Sample(min, max float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range xs {
		x := min + float64(i)*step
		xs[i] = x
		ys[i] = p.At(x)
	}

	return xs, ys
}

// String renders the polynomial as a human-readable formula.
func (p Polynomial) String() string {
	var sb strings.Builder
	sb.WriteString("y =")
	for i, c := range p.coeffs {
		deg := len(p.coeffs) - 1 - i
		if i > 0 {
			sb.WriteString(" +")
		}
		switch deg {
		case 0:
			fmt.Fprintf(&sb, " %.4g", c)
		case 1:
			fmt.Fprintf(&sb, " %.4g*x", c)
		default:
			fmt.Fprintf(&sb, " %.4g*x^%d", c, deg)
		}
	}

	return sb.String()
}

// fitPolynomial fits a degree-degree polynomial to the (x, y) points by
// least squares and returns it with coefficients highest degree first.
//
// The Vandermonde system is solved through QR decomposition. Inputs must
// satisfy len(x) == len(y) and len(x) >= degree+1; callers validate both
// before reaching here.
func fitPolynomial(x, y []float64, degree int) (Polynomial, error) {
	rows := len(x)
	cols := degree + 1

	vand := mat.NewDense(rows, cols, nil)
	for i, xv := range x {
		// Ascending powers per row: 1, x, x^2, ...
		pow := 1.0
		for j := 0; j < cols; j++ {
			vand.Set(i, j, pow)
			pow *= xv
		}
	}

	var qr mat.QR
	qr.Factorize(vand)

	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, mat.NewVecDense(rows, y)); err != nil {
		// A rank-deficient system (e.g. repeated x values) cannot determine
		// the fit.
		return Polynomial{}, fmt.Errorf("%w: least-squares solve failed: %v", errs.ErrInsufficientData, err)
	}

	coeffs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		coeffs[j] = sol.AtVec(cols - 1 - j)
	}

	return Polynomial{coeffs: coeffs}, nil
}
