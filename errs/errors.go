// Package errs defines the sentinel errors shared across the module.
//
// Callers match on these sentinels with errors.Is; packages wrap them with
// fmt.Errorf("%w: ...") to attach context without losing the identity.
package errs

import "errors"

var (
	// ErrInvalidRange indicates a date range whose start falls after its end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrEmptyResult indicates that no record matched the requested
	// entity group and date range.
	ErrEmptyResult = errors.New("no matching records")

	// ErrDuplicateObservation indicates more than one raw record for the
	// same entity and date. The input is ambiguous and is never resolved by
	// silently picking one of the records.
	ErrDuplicateObservation = errors.New("duplicate observation")

	// ErrUnsortedSeries indicates a series whose dates are not strictly
	// increasing.
	ErrUnsortedSeries = errors.New("series not strictly increasing by date")

	// ErrInsufficientData indicates fewer observed points than the
	// polynomial fit requires (degree + 1).
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrInvalidParameter indicates an out-of-domain fit parameter,
	// such as a degree below 1 or a negative horizon.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSourceUnavailable indicates a transport-level failure while
	// fetching raw records: connection errors, non-2xx responses, or a
	// payload that cannot be decoded.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrInvalidSnapshot indicates a snapshot file with a corrupt or
	// unrecognized header.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnknownCompression indicates an unsupported compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
)
