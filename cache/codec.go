package cache

import (
	"fmt"

	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/format"
)

// Compressor compresses a snapshot payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//     (the no-op codec, which returns its input, is the one exception)
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload compressed with the matching
// algorithm. Returns an error if the data is corrupted or was compressed
// with an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Snapshot writers and readers always use
// the same codec, chosen by the compression byte in the file header.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
