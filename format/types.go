// Package format defines the compression identifiers shared between the
// cache codecs and the snapshot file header.
package format

import "strings"

// CompressionType identifies the compression applied to a snapshot payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionTypeFromString maps a case-insensitive name to its
// CompressionType. The empty string maps to CompressionNone; unknown names
// map to CompressionType(0), which no codec accepts.
func CompressionTypeFromString(name string) CompressionType {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return CompressionType(0)
	}
}
