package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/benchfit/curvefit"
	"github.com/arloliu/benchfit/errs"
	"github.com/arloliu/benchfit/report"
)

const (
	// formatVersion is the current snapshot layout version.
	formatVersion = 1

	// headerSize is the fixed uncompressed header length in bytes.
	headerSize = 12

	// maxStringLen bounds encoded names and labels, matching the uint16
	// length prefix.
	maxStringLen = 65535

	// minRecordSize is the smallest possible encoded record: two empty
	// strings (2 bytes each), iterations (8), four float64 fields (32),
	// unit and complexity (1 each), input size (8) and flags (1).
	minRecordSize = 55
)

// magic identifies benchfit snapshot data ("BFIT").
var magic = [4]byte{'B', 'F', 'I', 'T'}

// run flag bits.
const (
	flagFailed  = 1 << 0
	flagBigORow = 1 << 1
	flagRMSRow  = 1 << 2
)

type config struct {
	compression Compression
}

// Option configures snapshot encoding.
type Option func(*config) error

// WithCompression selects the payload compression algorithm.
// The default is CompressionZstd.
func WithCompression(compression Compression) Option {
	return func(cfg *config) error {
		if _, ok := getCodec(compression); !ok {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compression))
		}
		cfg.compression = compression

		return nil
	}
}

// Encode serializes run records into snapshot bytes.
//
// Names and labels longer than 65535 bytes cannot be represented and
// return an error; an empty run slice produces a valid, decodable
// empty snapshot.
func Encode(runs []report.Run, opts ...Option) ([]byte, error) {
	cfg := config{compression: CompressionZstd}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var payload []byte
	for i := range runs {
		var err error
		payload, err = appendRun(payload, &runs[i])
		if err != nil {
			return nil, err
		}
	}

	codec, _ := getCodec(cfg.compression)
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	data := make([]byte, 0, headerSize+len(compressed))
	data = append(data, magic[:]...)
	data = append(data, formatVersion, byte(cfg.compression), 0, 0)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(runs)))
	data = append(data, compressed...)

	return data, nil
}

// Decode parses snapshot bytes back into run records.
//
// Malformed input is reported with the errs sentinels: ErrInvalidMagic,
// ErrUnsupportedVersion, ErrInvalidCompression or ErrShortSnapshot.
func Decode(data []byte) ([]report.Run, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrShortSnapshot, len(data), headerSize)
	}
	if [4]byte(data[:4]) != magic {
		return nil, errs.ErrInvalidMagic
	}
	if version := data[4]; version != formatVersion {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	compression := Compression(data[5])
	codec, ok := getCodec(compression)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compression))
	}

	count := binary.LittleEndian.Uint32(data[8:12])

	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	// The count comes from untrusted bytes; reject it before allocating
	// for it. Every record occupies at least minRecordSize bytes.
	if uint64(count)*minRecordSize > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: %d records declared, payload holds %d bytes",
			errs.ErrShortSnapshot, count, len(payload))
	}

	runs := make([]report.Run, 0, count)
	dec := decoder{data: payload}
	for i := uint32(0); i < count; i++ {
		run, err := dec.readRun()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if dec.off != len(payload) {
		return nil, fmt.Errorf("%w: %d bytes beyond the %d declared records",
			errs.ErrTrailingData, len(payload)-dec.off, count)
	}

	return runs, nil
}

// appendRun encodes one record: both strings length-prefixed, scalars
// fixed-width little-endian, markers packed into one flag byte.
func appendRun(buf []byte, run *report.Run) ([]byte, error) {
	var err error
	if buf, err = appendString(buf, run.Name); err != nil {
		return nil, err
	}
	if buf, err = appendString(buf, run.Label); err != nil {
		return nil, err
	}

	buf = binary.LittleEndian.AppendUint64(buf, uint64(run.Iterations))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(run.RealTime))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(run.CPUTime))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(run.ItemsPerSecond))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(run.BytesPerSecond))
	buf = append(buf, byte(run.Unit), byte(run.Complexity))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(run.ComplexityN))

	var flags byte
	if run.Failed {
		flags |= flagFailed
	}
	if run.BigORow {
		flags |= flagBigORow
	}
	if run.RMSRow {
		flags |= flagRMSRow
	}

	return append(buf, flags), nil
}

func appendString(buf []byte, s string) ([]byte, error) {
	if len(s) > maxStringLen {
		return nil, fmt.Errorf("string length %d exceeds maximum %d", len(s), maxStringLen)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(s)))

	return append(buf, s...), nil
}

// decoder walks a decompressed record payload with bounds checking.
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) take(n int) ([]byte, error) {
	if d.off+n > len(d.data) {
		return nil, fmt.Errorf("%w: record payload truncated at offset %d", errs.ErrShortSnapshot, d.off)
	}
	b := d.data[d.off : d.off+n]
	d.off += n

	return b, nil
}

func (d *decoder) readString() (string, error) {
	b, err := d.take(2)
	if err != nil {
		return "", err
	}
	length := int(binary.LittleEndian.Uint16(b))

	b, err = d.take(length)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (d *decoder) readUint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

func (d *decoder) readFloat64() (float64, error) {
	bits, err := d.readUint64()
	return math.Float64frombits(bits), err
}

func (d *decoder) readRun() (report.Run, error) {
	var run report.Run
	var err error

	if run.Name, err = d.readString(); err != nil {
		return run, err
	}
	if run.Label, err = d.readString(); err != nil {
		return run, err
	}

	iterations, err := d.readUint64()
	if err != nil {
		return run, err
	}
	run.Iterations = int64(iterations)

	if run.RealTime, err = d.readFloat64(); err != nil {
		return run, err
	}
	if run.CPUTime, err = d.readFloat64(); err != nil {
		return run, err
	}
	if run.ItemsPerSecond, err = d.readFloat64(); err != nil {
		return run, err
	}
	if run.BytesPerSecond, err = d.readFloat64(); err != nil {
		return run, err
	}

	b, err := d.take(2)
	if err != nil {
		return run, err
	}
	run.Unit = report.TimeUnit(b[0])
	run.Complexity = curvefit.BigO(b[1])

	complexityN, err := d.readUint64()
	if err != nil {
		return run, err
	}
	run.ComplexityN = int(complexityN)

	b, err = d.take(1)
	if err != nil {
		return run, err
	}
	run.Failed = b[0]&flagFailed != 0
	run.BigORow = b[0]&flagBigORow != 0
	run.RMSRow = b[0]&flagRMSRow != 0

	return run, nil
}
