// Package errs defines the sentinel errors shared across benchfit packages.
package errs

import "errors"

var (
	// ErrInvalidMagic indicates the data does not start with the benchfit
	// snapshot magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic number")

	// ErrUnsupportedVersion indicates the snapshot was written by a newer,
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidCompression indicates an unknown compression type tag.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrShortSnapshot indicates the data ends before the declared content.
	ErrShortSnapshot = errors.New("snapshot data too short")

	// ErrTrailingData indicates the data continues past the declared content.
	ErrTrailingData = errors.New("unexpected trailing snapshot data")
)
