package dataset

import (
	"sort"
	"strings"
	"time"
)

// RawRecord is a single case-count observation as delivered by the data
// source: one value for one entity on one date, partitioned by entity group.
type RawRecord struct {
	// EntityGroup is the coarse grouping used for filtering (a district).
	EntityGroup string
	// Entity is the finest-grained unit whose values form one series (a county).
	Entity string
	// Date is the calendar date of the observation.
	Date time.Time
	// Value is the non-negative case count reported for the date.
	Value int
}

// Observation is one (date, value) pair of an entity's series.
type Observation struct {
	Date  time.Time
	Value int
}

// EntitySeries is an ordered sequence of observations for one entity,
// strictly increasing by date with no duplicate dates.
type EntitySeries []Observation

// Values returns the case counts of the series in date order.
func (s EntitySeries) Values() []int {
	values := make([]int, len(s))
	for i, obs := range s {
		values[i] = obs.Value
	}

	return values
}

// Dates returns the observation dates of the series in order.
func (s EntitySeries) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, obs := range s {
		dates[i] = obs.Date
	}

	return dates
}

// Sorted reports whether the series is strictly increasing by date.
func (s EntitySeries) Sorted() bool {
	for i := 1; i < len(s); i++ {
		if !s[i-1].Date.Before(s[i].Date) {
			return false
		}
	}

	return true
}

// SeriesStore maps case-normalized entity names to their series.
//
// Every entity present in a store has at least one observation; entities
// with no matching records are omitted rather than stored empty.
type SeriesStore map[string]EntitySeries

// Series returns the series for the given entity name. The lookup is
// case-insensitive: names are normalized the same way Build normalizes them.
func (st SeriesStore) Series(entity string) (EntitySeries, bool) {
	series, ok := st[NormalizeEntity(entity)]
	return series, ok
}

// Entities returns the entity names in the store, sorted for deterministic
// iteration.
func (st SeriesStore) Entities() []string {
	names := make([]string, 0, len(st))
	for name := range st {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NormalizeEntity returns the canonical form of an entity name used as a
// SeriesStore key. The source reports county names in upper case, so upper
// case is the canonical form.
func NormalizeEntity(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
