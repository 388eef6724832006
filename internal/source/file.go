package source

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// FileSource is a ByteSource backed by a memory-mapped file. The mapping is
// read-only; the file is never observed for external modification, so a
// stale view is possible but harmless.
type FileSource struct {
	name string
	r    *mmap.ReaderAt
}

// OpenFile maps the file at path. The caller owns the returned source and
// must Close it when the viewer is torn down.
func OpenFile(path string) (*FileSource, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to map %s: %w", path, err)
	}
	return &FileSource{name: path, r: r}, nil
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Len() uint64 { return uint64(s.r.Len()) }

func (s *FileSource) Slice(offset, count uint64) ([]byte, error) {
	length := s.Len()
	if count == 0 {
		return nil, nil
	}
	if offset >= length {
		return nil, ErrOutOfRange
	}
	end := offset + count
	if end > length || end < offset {
		end = length
	}
	buf := make([]byte, end-offset)
	n, err := s.r.ReadAt(buf, int64(offset))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read %s at %#x: %w", s.name, offset, err)
	}
	return buf[:n], nil
}

func (s *FileSource) Fraction(offset uint64) float64 {
	return fraction(offset, s.Len())
}

// Close unmaps the file.
func (s *FileSource) Close() error {
	return s.r.Close()
}
