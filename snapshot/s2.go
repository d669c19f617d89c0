package snapshot

import "github.com/klauspost/compress/s2"

// S2Codec compresses payloads with S2, trading some ratio for very fast
// encode and decode. A good fit for short-lived snapshots exchanged
// between sessions on the same machine.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses the payload using S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores an S2-compressed payload.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
