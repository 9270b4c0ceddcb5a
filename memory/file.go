package memory

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
)

const (
	EnvSource    = "MEMORY_SOURCE"
	EnvGuestBase = "MEMORY_GUEST_BASE"
	EnvHostBase  = "MEMORY_HOST_BASE"

	// DefaultGuestBase is the start of PSP user memory.
	DefaultGuestBase = 0x08000000
)

// FileReader reads from a RAM dump or a /proc/<pid>/mem handle.
type FileReader struct {
	*SeekReader
	file *os.File
}

func OpenFile(l logrus.FieldLogger) func(path string, guestBase uint64, hostBase uint64) (*FileReader, error) {
	return func(path string, guestBase uint64, hostBase uint64) (*FileReader, error) {
		f, err := os.Open(path)
		if err != nil {
			l.WithError(err).Errorf("Unable to open memory source [%s].", path)
			return nil, fmt.Errorf("%w: %v", ErrMemoryAccess, err)
		}
		l.Debugf("Opened memory source [%s] guest base [0x%X] host base [0x%X].", path, guestBase, hostBase)
		return &FileReader{SeekReader: NewSeekReader(f, guestBase, hostBase), file: f}, nil
	}
}

func (r *FileReader) Close() error {
	return r.file.Close()
}

// OpenFromEnv opens the memory source described by MEMORY_SOURCE, MEMORY_GUEST_BASE and MEMORY_HOST_BASE.
func OpenFromEnv(l logrus.FieldLogger) (*FileReader, error) {
	path := os.Getenv(EnvSource)
	if path == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrMemoryAccess, EnvSource)
	}
	guestBase, err := addressFromEnv(EnvGuestBase, DefaultGuestBase)
	if err != nil {
		return nil, err
	}
	hostBase, err := addressFromEnv(EnvHostBase, 0)
	if err != nil {
		return nil, err
	}
	return OpenFile(l)(path, guestBase, hostBase)
}

func addressFromEnv(key string, def uint64) (uint64, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	res, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s [%s]: %w", key, val, err)
	}
	return res, nil
}
