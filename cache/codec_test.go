package cache

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/format"
)

func TestCodecRoundTrip(t *testing.T) {
	// Repetitive JSON-like data, the shape codecs see in practice.
	payload := bytes.Repeat([]byte(`{"2021-01-02": 12, "2021-01-03": 15}`), 64)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			if compression != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyPayload(t *testing.T) {
	for compression := range builtinCodecs {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xAA))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			_, err = codec.Decompress([]byte("definitely not a compressed frame"))
			require.Error(t, err)
		})
	}
}
