package memory

import (
	"errors"
	"fmt"
	"io"
)

var ErrMemoryAccess = errors.New("memory access failed")

// Reader is a single seek and read cursor over a process address space.
type Reader interface {
	Seek(offset uint64) error
	// Read returns exactly n bytes from the cursor or fails.
	Read(n int) ([]byte, error)
}

// SeekReader adapts an io.ReadSeeker whose offset zero maps to guestBase in the
// target address space and hostBase in the underlying source.
type SeekReader struct {
	source    io.ReadSeeker
	guestBase uint64
	hostBase  uint64
}

func NewSeekReader(source io.ReadSeeker, guestBase uint64, hostBase uint64) *SeekReader {
	return &SeekReader{
		source:    source,
		guestBase: guestBase,
		hostBase:  hostBase,
	}
}

func (r *SeekReader) translate(offset uint64) (int64, error) {
	if offset < r.guestBase {
		return 0, fmt.Errorf("%w: address [0x%X] below mapped base [0x%X]", ErrMemoryAccess, offset, r.guestBase)
	}
	host := r.hostBase + (offset - r.guestBase)
	if host > uint64(1<<63-1) {
		return 0, fmt.Errorf("%w: address [0x%X] out of range", ErrMemoryAccess, offset)
	}
	return int64(host), nil
}

func (r *SeekReader) Seek(offset uint64) error {
	host, err := r.translate(offset)
	if err != nil {
		return err
	}
	if _, err = r.source.Seek(host, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek to [0x%X]: %v", ErrMemoryAccess, offset, err)
	}
	return nil
}

func (r *SeekReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read length [%d]", ErrMemoryAccess, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.source, buf); err != nil {
		return nil, fmt.Errorf("%w: read of [%d] bytes: %v", ErrMemoryAccess, n, err)
	}
	return buf, nil
}
