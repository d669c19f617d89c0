// Package hash provides 64-bit identity keys for benchmark run names.
package hash

import "github.com/cespare/xxhash/v2"

// RunID computes the xxHash64 identity of a benchmark configuration name,
// used as a cheap fixed-size map key when partitioning run streams.
func RunID(name string) uint64 {
	return xxhash.Sum64String(name)
}
