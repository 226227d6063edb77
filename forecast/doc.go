// Package forecast fits a polynomial trend to an entity's case-count series
// and extrapolates it over a forecast horizon.
//
// The x axis is a cumulative day-offset encoding: x[0] = 0 and each
// subsequent x adds the number of days elapsed since the previous
// observation. Real reporting series have irregular gaps (missing weekends,
// late reports), and a uniform index would misrepresent elapsed time in the
// fitted curve, so the encoding follows the calendar instead.
//
// Future points are generated at a fixed nominal month length of 30 days
// beyond the last observed date. The polynomial is fit by least squares over
// the observed points only; synthetic future x values never participate in
// the fit. The fit is solved through a QR decomposition of the Vandermonde
// system (gonum) rather than hand-rolled normal equations, which go
// ill-conditioned quickly at day-offset magnitudes in the hundreds.
//
// # Basic Usage
//
//	result, err := forecast.Forecast(series, 6, 3)
//	if err != nil {
//	    return err
//	}
//	for i, date := range result.FutureDates {
//	    fmt.Printf("%s: %.1f\n", date.Format(time.DateOnly), result.YForecast[i])
//	}
//
// Degrees above roughly 8-10 on spans of hundreds of days are numerically
// unstable regardless of solver; callers choosing the degree should keep it
// small relative to the series length.
package forecast
