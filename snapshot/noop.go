package snapshot

// NoOpCodec passes payloads through unmodified.
//
// Useful when snapshots are small, when the surrounding storage already
// compresses, or as a baseline when measuring codec overhead. Both
// directions return the input slice without copying, so callers must
// not modify the input while the result is in use.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns the input data as-is.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
