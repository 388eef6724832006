package source

import "errors"

// ErrOutOfRange is returned when a read starts past the end of the source.
var ErrOutOfRange = errors.New("source: offset out of range")

// ByteSource is a random-access, read-only view over a file's bytes.
// Navigation and rendering go through this interface so the engine can be
// driven by an in-memory buffer in tests instead of a real mapping.
type ByteSource interface {
	// Name returns a display name for the source (usually the file path).
	Name() string

	// Len returns the total number of bytes in the source.
	Len() uint64

	// Slice returns up to count bytes starting at offset. A read that runs
	// past the end returns the bytes actually available, shorter than
	// requested. ErrOutOfRange is returned only when offset >= Len() and
	// count > 0, i.e. there are no valid bytes at all.
	Slice(offset, count uint64) ([]byte, error)

	// Fraction maps an offset to a position in [0, 1] for the position bar.
	Fraction(offset uint64) float64
}

// BytesSource is a ByteSource backed by an in-memory byte slice.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource wraps data in a ByteSource.
func NewBytesSource(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

func (s *BytesSource) Name() string { return s.name }

func (s *BytesSource) Len() uint64 { return uint64(len(s.data)) }

func (s *BytesSource) Slice(offset, count uint64) ([]byte, error) {
	return sliceBytes(s.data, offset, count)
}

func (s *BytesSource) Fraction(offset uint64) float64 {
	return fraction(offset, s.Len())
}

func sliceBytes(data []byte, offset, count uint64) ([]byte, error) {
	length := uint64(len(data))
	if count == 0 {
		if offset > length {
			offset = length
		}
		return data[offset:offset], nil
	}
	if offset >= length {
		return nil, ErrOutOfRange
	}
	end := offset + count
	if end > length || end < offset {
		end = length
	}
	return data[offset:end], nil
}

func fraction(offset, length uint64) float64 {
	if length <= 1 {
		return 0.5
	}
	if offset > length-1 {
		offset = length - 1
	}
	return float64(offset) / float64(length-1)
}
