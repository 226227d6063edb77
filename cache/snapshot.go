package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/format"
	"github.com/fabioo29/covid-cases-prediction/internal/hash"
	"github.com/fabioo29/covid-cases-prediction/internal/options"
)

const (
	snapshotVersion = 1
	// dateKeyFormat is the textual date key of the snapshot payload.
	dateKeyFormat = time.DateOnly
)

var snapshotMagic = []byte{'C', 'V', 'S', 'N'}

// headerSize is magic + version byte + compression byte.
const headerSize = 6

type saveConfig struct {
	compression format.CompressionType
}

// SaveOption is a functional option for Save.
type SaveOption = options.Option[*saveConfig]

// WithCompression selects the snapshot payload compression. The default is
// Zstd.
func WithCompression(compression format.CompressionType) SaveOption {
	return options.New(func(cfg *saveConfig) error {
		if _, err := GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// Key derives a stable snapshot identifier for an (entity group, date range)
// query. Callers typically embed it in the snapshot filename so that
// different queries never clobber each other.
func Key(entityGroup string, start, end time.Time) uint64 {
	return hash.ID(fmt.Sprintf("%s|%s|%s",
		dataset.NormalizeEntity(entityGroup),
		start.Format(dateKeyFormat),
		end.Format(dateKeyFormat)))
}

// Save writes the store to path as a framed snapshot file.
//
// The payload is the entity -> {date -> value} JSON mapping, compressed with
// the configured codec. Entities and dates serialize in sorted order so two
// saves of the same store are byte-identical.
func Save(path string, store dataset.SeriesStore, opts ...SaveOption) error {
	cfg := saveConfig{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}

	payload, err := marshalStore(store)
	if err != nil {
		return err
	}

	codec, err := GetCodec(cfg.compression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("snapshot compression failed: %w", err)
	}

	buf := make([]byte, 0, headerSize+len(compressed))
	buf = append(buf, snapshotMagic...)
	buf = append(buf, snapshotVersion, byte(cfg.compression))
	buf = append(buf, compressed...)

	return os.WriteFile(path, buf, 0o644)
}

// Load reads a snapshot file written by Save and reconstructs the store.
//
// Returns errs.ErrInvalidSnapshot for a truncated or foreign file and
// errs.ErrUnknownCompression when the header names a codec this build does
// not carry.
func Load(path string) (dataset.SeriesStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(raw) < headerSize || !bytes.Equal(raw[:4], snapshotMagic) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSnapshot, path)
	}
	if raw[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, raw[4])
	}

	codec, err := GetCodec(format.CompressionType(raw[5]))
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(raw[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	return unmarshalStore(payload)
}

// marshalStore renders the keyed textual representation:
// {"GUIMARÃES": {"2021-01-02": 12, ...}, ...}.
func marshalStore(store dataset.SeriesStore) ([]byte, error) {
	out := make(map[string]map[string]int, len(store))
	for _, entity := range store.Entities() {
		byDate := make(map[string]int, len(store[entity]))
		for _, obs := range store[entity] {
			byDate[obs.Date.Format(dateKeyFormat)] = obs.Value
		}
		out[entity] = byDate
	}

	return json.Marshal(out)
}

func unmarshalStore(payload []byte) (dataset.SeriesStore, error) {
	var in map[string]map[string]int
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	store := make(dataset.SeriesStore, len(in))
	for entity, byDate := range in {
		series := make(dataset.EntitySeries, 0, len(byDate))
		for key, value := range byDate {
			date, err := time.Parse(dateKeyFormat, key)
			if err != nil {
				return nil, fmt.Errorf("%w: bad date key %q", errs.ErrInvalidSnapshot, key)
			}
			series = append(series, dataset.Observation{Date: date, Value: value})
		}
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
		store[dataset.NormalizeEntity(entity)] = series
	}

	return store, nil
}
