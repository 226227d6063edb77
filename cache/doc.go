// Package cache persists a normalized dataset.SeriesStore to disk so a
// front end can replot without refetching the source.
//
// A snapshot is the keyed textual representation of a store,
// entity -> {date string -> value}, encoded as JSON and wrapped in a small
// framed file: a magic marker, a format version, the compression type, and
// the compressed payload. The compression stage is pluggable:
//
//   - None: no compression, payload stored as-is
//   - Zstd: best ratio, the default for snapshots kept around for weeks
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Snapshot files for distinct queries are told apart by Key, an xxHash64 of
// the (entity group, date range) triple.
//
// The core pipeline neither reads nor writes this representation; only the
// command front end does.
package cache
