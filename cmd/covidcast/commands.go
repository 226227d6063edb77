package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabioo29/covid-cases-prediction/cache"
	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/forecast"
	"github.com/fabioo29/covid-cases-prediction/format"
	"github.com/fabioo29/covid-cases-prediction/source"
)

const flagDateFormat = "02-01-2006"

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a district's case counts and snapshot them to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange()
			if err != nil {
				return err
			}

			store, err := fetchStore(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			path := snapshotPath(start, end)
			comp := format.CompressionTypeFromString(compression)
			if err := cache.Save(path, store, cache.WithCompression(comp)); err != nil {
				return err
			}

			log.Printf("snapshot saved: %s (%d counties)", path, len(store))

			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	var (
		county      string
		degree      int
		predictions int
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Fit a polynomial trend for one county and print the forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange()
			if err != nil {
				return err
			}

			store, err := loadOrFetchStore(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			series, ok := store.Series(county)
			if !ok {
				return fmt.Errorf("county %q has no data in %s (try 'covidcast counties')", county, district)
			}

			result, err := forecast.Forecast(series, degree, predictions)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), county, series, result)

			return nil
		},
	}

	cmd.Flags().StringVar(&county, "county", "", "County to forecast")
	cmd.Flags().IntVar(&degree, "degree", 6, "Polynomial degree")
	cmd.Flags().IntVar(&predictions, "predictions", 3, "Number of 30-day periods to forecast")
	cmd.MarkFlagRequired("county")

	return cmd
}

func countiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counties",
		Short: "List counties with data in the requested district and range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange()
			if err != nil {
				return err
			}

			store, err := loadOrFetchStore(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			for _, name := range store.Entities() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func parseRange() (start, end time.Time, err error) {
	start, err = time.Parse(flagDateFormat, fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad --from date %q: %w", fromDate, err)
	}

	if toDate == "" {
		end = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		end, err = time.Parse(flagDateFormat, toDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad --to date %q: %w", toDate, err)
		}
	}

	return start, end, nil
}

func fetchStore(ctx context.Context, start, end time.Time) (dataset.SeriesStore, error) {
	if !source.ValidDistrict(district) {
		return nil, fmt.Errorf("unknown district %q", district)
	}

	client, err := source.NewClient(
		source.WithCredentials(getEnv("API_USER", ""), getEnv("API_PASSWORD", "")),
	)
	if err != nil {
		return nil, err
	}

	records, err := client.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return dataset.Build(records, district, start, end)
}

// loadOrFetchStore prefers the on-disk snapshot for the query and falls
// back to the API, snapshotting the result for next time.
func loadOrFetchStore(ctx context.Context, start, end time.Time) (dataset.SeriesStore, error) {
	path := snapshotPath(start, end)

	store, err := cache.Load(path)
	if err == nil {
		return store, nil
	}
	if !os.IsNotExist(err) && !errors.Is(err, errs.ErrInvalidSnapshot) {
		return nil, err
	}

	store, err = fetchStore(ctx, start, end)
	if err != nil {
		return nil, err
	}

	comp := format.CompressionTypeFromString(compression)
	if err := cache.Save(path, store, cache.WithCompression(comp)); err != nil {
		log.Printf("snapshot save failed, continuing without cache: %v", err)
	}

	return store, nil
}

func snapshotPath(start, end time.Time) string {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.Printf("cache dir: %v", err)
	}

	return filepath.Join(cacheDir, fmt.Sprintf("%016x.snap", cache.Key(district, start, end)))
}

// printResult renders observed history followed by the forecasted periods,
// with a divider at the observed/forecast boundary.
func printResult(out io.Writer, county string, series dataset.EntitySeries, result *forecast.Result) {
	fmt.Fprintf(out, "Covid-19 cases in %s (%s)\n", county, result.Polynomial())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tCASES")
	for i, obs := range series {
		fmt.Fprintf(w, "%s\t%d\t%d\n", obs.Date.Format(flagDateFormat), result.X[i], obs.Value)
	}

	if len(result.FutureDates) > 0 {
		fmt.Fprintln(w, "----\t----\t---- (forecast)")
		for k, date := range result.FutureDates {
			fmt.Fprintf(w, "%s\t%d\t%.1f\n",
				date.Format(flagDateFormat), result.X[result.SplitIndex+k], result.YForecast[k])
		}
	}

	w.Flush()
}
