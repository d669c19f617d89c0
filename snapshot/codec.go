package snapshot

// Compression identifies the algorithm applied to the record payload.
type Compression uint8

const (
	CompressionNone Compression = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd Compression = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   Compression = 0x3 // CompressionS2 applies S2 compression.
	CompressionLZ4  Compression = 0x4 // CompressionLZ4 applies LZ4 block compression.
)

func (c Compression) String() string {
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

// Compressor compresses a record payload.
//
// The input is the complete encoded record stream of one snapshot,
// typically a few hundred bytes to a few hundred kilobytes. The
// returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a record payload compressed by the matching
// Compressor. Corrupted or mismatched input returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; all snapshot codecs implement it and
// are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Compression]Codec{
	CompressionNone: NoOpCodec{},
	CompressionZstd: ZstdCodec{},
	CompressionS2:   S2Codec{},
	CompressionLZ4:  LZ4Codec{},
}

// getCodec retrieves the built-in Codec for the given compression tag,
// reporting whether the tag is known.
func getCodec(compression Compression) (Codec, bool) {
	codec, ok := builtinCodecs[compression]
	return codec, ok
}
