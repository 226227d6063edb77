package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/internal/options"
)

// Result is a self-contained forecast artifact: everything a caller needs
// to render or report a fitted trend and its extrapolation.
//
// The x axis covers both observed and future points, so
// len(X) == len(YObserved) + len(FutureDates) always holds. Every Result is
// freshly allocated; results are never mutated after return and may be
// shared across goroutines.
type Result struct {
	// X is the cumulative day-offset encoding of all points, observed
	// then future.
	X []int
	// YObserved holds the observed case counts, in series order.
	YObserved []int
	// Coefficients are the fitted polynomial coefficients, highest degree
	// first.
	Coefficients []float64
	// YForecast holds the fitted polynomial evaluated at each future x.
	// Forecasts are model outputs, not observed counts, and stay floating
	// point.
	YForecast []float64
	// SplitIndex separates observed history from forecasted points on the
	// X axis: len(YObserved) when the horizon is positive, or
	// len(YObserved)-1 when the horizon is zero and no boundary exists.
	SplitIndex int
	// FutureDates are the synthetic dates the forecast was evaluated at.
	FutureDates []time.Time

	poly Polynomial
}

// Polynomial returns the fitted polynomial, for callers that want to sample
// the trend curve between observations.
func (r *Result) Polynomial() Polynomial {
	return r.poly
}

// Forecast fits a degree-degree polynomial to the series and extrapolates
// horizon future periods beyond its last observed date.
//
// The series must already be sorted strictly ascending by date; sorting is
// the series builder's responsibility and is asserted here, never repaired.
// The fit uses the observed points only, even though the returned X axis
// includes the synthetic future points.
//
// Two calls with identical arguments produce identical results, modulo
// floating-point reassociation inside the numeric solver.
//
// Parameters:
//   - series: Ordered observations for one entity
//   - degree: Polynomial degree, at least 1
//   - horizon: Count of future periods to generate, at least 0
//   - opts: Optional settings, such as WithStepDays
//
// Returns:
//   - *Result: The forecast artifact
//   - error: errs.ErrInvalidParameter for out-of-domain degree or horizon,
//     errs.ErrUnsortedSeries if dates are not strictly increasing,
//     errs.ErrInsufficientData if the fit is under-determined
func Forecast(series dataset.EntitySeries, degree, horizon int, opts ...Option) (*Result, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1, got %d", errs.ErrInvalidParameter, degree)
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%w: horizon must not be negative, got %d", errs.ErrInvalidParameter, horizon)
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := len(series)
	if n < degree+1 {
		return nil, fmt.Errorf("%w: %d points cannot determine a degree-%d fit",
			errs.ErrInsufficientData, n, degree)
	}
	if !series.Sorted() {
		return nil, errs.ErrUnsortedSeries
	}

	dates := make([]time.Time, 0, n+horizon)
	dates = append(dates, series.Dates()...)

	step := time.Duration(cfg.stepDays) * 24 * time.Hour
	futureDates := make([]time.Time, 0, horizon)
	for k := 1; k <= horizon; k++ {
		futureDates = append(futureDates, series[n-1].Date.Add(time.Duration(k)*step))
	}
	dates = append(dates, futureDates...)

	x := dayOffsets(dates)

	xObserved := make([]float64, n)
	yObserved := make([]float64, n)
	for i, obs := range series {
		xObserved[i] = float64(x[i])
		yObserved[i] = float64(obs.Value)
	}

	poly, err := fitPolynomial(xObserved, yObserved, degree)
	if err != nil {
		return nil, err
	}

	yForecast := make([]float64, horizon)
	for k := 0; k < horizon; k++ {
		yForecast[k] = poly.At(float64(x[n+k]))
	}

	splitIndex := n
	if horizon == 0 {
		splitIndex = n - 1
	}

	return &Result{
		X:            x,
		YObserved:    series.Values(),
		Coefficients: poly.Coefficients(),
		YForecast:    yForecast,
		SplitIndex:   splitIndex,
		FutureDates:  futureDates,
		poly:         poly,
	}, nil
}

// dayOffsets converts a date sequence into its cumulative day-count
// encoding: offsets[0] = 0, offsets[i] = offsets[i-1] + whole days between
// dates i-1 and i.
func dayOffsets(dates []time.Time) []int {
	offsets := make([]int, len(dates))
	for i := 1; i < len(dates); i++ {
		gap := dates[i].Sub(dates[i-1])
		// Round, not truncate: a DST-shifted midnight is still the same
		// calendar day.
		offsets[i] = offsets[i-1] + int(math.Round(gap.Hours()/24))
	}

	return offsets
}
