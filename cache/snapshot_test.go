package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/format"
)

func testStore() dataset.SeriesStore {
	day := func(d int) time.Time {
		return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
	}

	return dataset.SeriesStore{
		"BRAGA": dataset.EntitySeries{
			{Date: day(1), Value: 10},
			{Date: day(2), Value: 12},
			{Date: day(5), Value: 7},
		},
		"GUIMARÃES": dataset.EntitySeries{
			{Date: day(3), Value: 4},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "store.snap")
			store := testStore()

			require.NoError(t, Save(path, store, WithCompression(compression)))

			loaded, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, store, loaded)
		})
	}
}

func TestSaveDefaultsToZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.snap")
	require.NoError(t, Save(path, testStore()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), headerSize)
	require.Equal(t, byte(format.CompressionZstd), raw[5])
}

func TestSaveIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.snap")
	second := filepath.Join(dir, "b.snap")

	store := testStore()
	require.NoError(t, Save(first, store, WithCompression(format.CompressionNone)))
	require.NoError(t, Save(second, store, WithCompression(format.CompressionNone)))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSaveRejectsUnknownCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.snap")
	err := Save(path, testStore(), WithCompression(format.CompressionType(0x7f)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestLoadRejectsCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		return path
	}

	t.Run("truncated", func(t *testing.T) {
		_, err := Load(write("short.snap", []byte("CVS")))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("foreign magic", func(t *testing.T) {
		_, err := Load(write("foreign.snap", []byte("JUNK\x01\x01{}")))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("future version", func(t *testing.T) {
		_, err := Load(write("version.snap", []byte("CVSN\x09\x01{}")))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("unknown codec byte", func(t *testing.T) {
		_, err := Load(write("codec.snap", []byte("CVSN\x01\x7f{}")))
		require.ErrorIs(t, err, errs.ErrUnknownCompression)
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, err := Load(write("payload.snap", []byte("CVSN\x01\x01not json")))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.snap"))
		require.Error(t, err)
		require.True(t, os.IsNotExist(err))
	})
}

func TestLoadNormalizesAndSorts(t *testing.T) {
	// A hand-written snapshot with a lowercase entity and shuffled date keys
	// still loads into normalized, sorted form.
	payload := []byte(`{"braga": {"2021-01-05": 3, "2021-01-01": 1, "2021-01-02": 2}}`)
	raw := append([]byte("CVSN\x01\x01"), payload...)

	path := filepath.Join(t.TempDir(), "hand.snap")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	store, err := Load(path)
	require.NoError(t, err)

	series, ok := store.Series("Braga")
	require.True(t, ok)
	require.Len(t, series, 3)
	require.True(t, series.Sorted())
	require.Equal(t, []int{1, 2, 3}, series.Values())
}

func TestKeyStability(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)

	require.Equal(t, Key("Braga", start, end), Key("braga", start, end))
	require.NotEqual(t, Key("Braga", start, end), Key("Porto", start, end))
	require.NotEqual(t, Key("Braga", start, end), Key("Braga", start, end.AddDate(0, 0, 1)))
}
