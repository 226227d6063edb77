// Package source retrieves raw county case-count records from the VOST
// covid19 REST API.
//
// The client owns everything transport-shaped: HTTP Basic authentication,
// request pacing, date-range URL construction, and decoding of the
// column-oriented JSON payload into dataset.RawRecord values. Transport
// failures, non-2xx responses, and malformed payloads all surface as
// errs.ErrSourceUnavailable; the normalization pipeline never sees them.
package source
