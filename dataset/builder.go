package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fabioo29/covid-cases-prediction/errs"
)

// Build converts a raw record collection into a SeriesStore restricted to
// one entity group and an inclusive date range.
//
// The group match is case-insensitive. Records outside [start, end] are
// dropped; the remainder is grouped by entity and each group is sorted
// ascending by date.
//
// Parameters:
//   - records: Raw records as delivered by the data source
//   - entityGroup: Group to filter by (case-insensitive)
//   - start, end: Inclusive date range; start must not be after end
//
// Returns:
//   - SeriesStore: Per-entity ordered series, keyed by normalized entity name
//   - error: errs.ErrInvalidRange if start is after end,
//     errs.ErrEmptyResult if no record matches,
//     errs.ErrDuplicateObservation if an entity has two records on one date
func Build(records []RawRecord, entityGroup string, start, end time.Time) (SeriesStore, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s after end %s",
			errs.ErrInvalidRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	store := make(SeriesStore)
	for _, rec := range records {
		if !strings.EqualFold(rec.EntityGroup, entityGroup) {
			continue
		}
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}

		entity := NormalizeEntity(rec.Entity)
		store[entity] = append(store[entity], Observation{Date: rec.Date, Value: rec.Value})
	}

	if len(store) == 0 {
		return nil, fmt.Errorf("%w: group %q in [%s, %s]",
			errs.ErrEmptyResult, entityGroup, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	for entity, series := range store {
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})

		for i := 1; i < len(series); i++ {
			if series[i].Date.Equal(series[i-1].Date) {
				return nil, fmt.Errorf("%w: entity %q date %s",
					errs.ErrDuplicateObservation, entity, series[i].Date.Format(time.DateOnly))
			}
		}

		store[entity] = series
	}

	return store, nil
}
