package snapshot

// ZstdCodec compresses payloads with Zstandard, the default snapshot
// codec: run records are highly repetitive (shared name prefixes,
// clustered float magnitudes) and compress well, and snapshots are
// written once per session so encode cost is irrelevant.
//
// The backend is the pure-Go klauspost implementation by default; build
// with the gozstd tag to use the cgo libzstd bindings instead.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
