// Package hash derives stable 64-bit identifiers from strings.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. Used to key dataset
// snapshots by their (group, range) query.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
