// Package dataset normalizes raw, irregularly-ordered case-count records
// into per-entity time series.
//
// The raw data is partitioned by entity group (a district) and keyed by
// entity (a county) and calendar date. Build filters a record collection to
// one group and an inclusive date range, groups the survivors by entity,
// and emits a SeriesStore: a mapping from case-normalized entity name to an
// ordered, strictly-increasing-by-date series of values.
//
// Build is a pure function. It holds no reference to its inputs or outputs
// after returning, so distinct calls may run concurrently without
// coordination.
//
// # Basic Usage
//
//	store, err := dataset.Build(records, "Braga", start, end)
//	if err != nil {
//	    return err
//	}
//	series, ok := store.Series("Guimarães")
//
// Duplicate records for the same entity and date are treated as an explicit
// error (errs.ErrDuplicateObservation) rather than resolved by picking one;
// a silently wrong series is worse than a visible failure.
package dataset
