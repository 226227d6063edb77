// Package covidcases turns raw district case-count records into per-county
// time series and polynomial trend forecasts.
//
// The pipeline has two algorithmic stages, each usable on its own:
//
//   - dataset: filters and reshapes raw (district, county, date, value)
//     records into ordered per-county series
//   - forecast: fits a least-squares polynomial over a cumulative
//     day-offset axis and extrapolates it over a horizon of 30-day periods
//
// Around them sit thin collaborators: source fetches records from the VOST
// REST API, cache snapshots a normalized dataset to disk, and cmd/covidcast
// drives the whole thing from the command line.
//
// # Basic Usage
//
//	client, _ := source.NewClient(source.WithCredentials(user, pass))
//	store, err := covidcases.FetchStore(ctx, client, "Braga", start, end)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := covidcases.ForecastEntity(store, "Guimarães",
//	    covidcases.DefaultDegree, covidcases.DefaultPredictions)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.YForecast)
//
// This package provides convenience wrappers over the concern packages; for
// fine-grained control (custom future-date spacing, snapshot compression,
// alternate endpoints) use dataset, forecast, cache and source directly.
package covidcases

import (
	"context"
	"fmt"
	"time"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/forecast"
	"github.com/fabioo29/covid-cases-prediction/source"
)

// Default fit settings: a sixth-degree polynomial extrapolated over three
// 30-day periods.
const (
	DefaultDegree      = 6
	DefaultPredictions = 3
)

// FetchStore fetches the date range from the API and normalizes the records
// for one district into a per-county series store.
func FetchStore(ctx context.Context, client *source.Client, district string, start, end time.Time) (dataset.SeriesStore, error) {
	records, err := client.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return dataset.Build(records, district, start, end)
}

// ForecastEntity runs the trend fit for one county in the store.
//
// Returns errs.ErrEmptyResult when the county has no series in the store.
func ForecastEntity(store dataset.SeriesStore, county string, degree, horizon int) (*forecast.Result, error) {
	series, ok := store.Series(county)
	if !ok {
		return nil, fmt.Errorf("%w: county %q not in store", errs.ErrEmptyResult, county)
	}

	return forecast.Forecast(series, degree, horizon)
}
