// Package snapshot persists benchmark run records in a compact binary
// format, so a baseline recorded in one session can be decoded and
// compared in a later one.
//
// A snapshot is a fixed little-endian header followed by a compressed
// record payload:
//
//	┌─────────────────────────────────────────────┐
//	│ Header (12 bytes, fixed, uncompressed)      │
//	│  - Magic (4 bytes): "BFIT"                  │
//	│  - Version (1 byte)                         │
//	│  - Compression (1 byte)                     │
//	│  - Reserved (2 bytes, zero)                 │
//	│  - Record count (4 bytes)                   │
//	├─────────────────────────────────────────────┤
//	│ Record payload (variable, compressed)       │
//	│  - One fixed-layout record per run          │
//	│  - Strings length-prefixed (uint16)         │
//	└─────────────────────────────────────────────┘
//
// # Usage
//
//	data, err := snapshot.Encode(runs)
//	if err != nil {
//	    return err
//	}
//	// ... store data, load it back later ...
//	runs, err = snapshot.Decode(data)
//
// The payload is compressed with Zstd by default; None, S2 and LZ4 are
// available through WithCompression:
//
//	data, err := snapshot.Encode(runs, snapshot.WithCompression(snapshot.CompressionLZ4))
//
// # Errors
//
// Snapshot bytes come from outside the process, so malformed input is a
// recoverable error, not a bug: Decode returns errs.ErrInvalidMagic,
// errs.ErrUnsupportedVersion, errs.ErrInvalidCompression,
// errs.ErrShortSnapshot or errs.ErrTrailingData (wrapped with context)
// rather than panicking. The declared record count is authoritative in
// both directions: a payload too small or too large for it is rejected.
package snapshot
