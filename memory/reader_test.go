package memory

import (
	"bytes"
	"errors"
	"github.com/sirupsen/logrus/hooks/test"
	"os"
	"path/filepath"
	"testing"
)

func TestSeekReaderTranslatesGuestAddress(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewSeekReader(bytes.NewReader(data), 0x08000000, 0)
	if err := r.Seek(0x08000002); err != nil {
		t.Fatalf("Failed to seek: %v", err)
	}
	b, err := r.Read(3)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if !bytes.Equal(b, []byte{0x02, 0x03, 0x04}) {
		t.Fatalf("Read expected=%v, got=%v", []byte{0x02, 0x03, 0x04}, b)
	}
}

func TestSeekReaderBelowBase(t *testing.T) {
	r := NewSeekReader(bytes.NewReader(make([]byte, 4)), 0x08000000, 0)
	err := r.Seek(0x100)
	if !errors.Is(err, ErrMemoryAccess) {
		t.Fatalf("Expected memory access error, got %v", err)
	}
}

func TestSeekReaderShortRead(t *testing.T) {
	r := NewSeekReader(bytes.NewReader(make([]byte, 4)), 0, 0)
	if err := r.Seek(2); err != nil {
		t.Fatalf("Failed to seek: %v", err)
	}
	_, err := r.Read(4)
	if !errors.Is(err, ErrMemoryAccess) {
		t.Fatalf("Expected memory access error for short read, got %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	l, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "ram.bin")
	if err := os.WriteFile(path, []byte{0xAA, 0xBB, 0xCC, 0xDD}, 0o644); err != nil {
		t.Fatalf("Failed to write dump: %v", err)
	}
	r, err := OpenFile(l)(path, 0x08000000, 0)
	if err != nil {
		t.Fatalf("Failed to open dump: %v", err)
	}
	defer r.Close()

	if err = r.Seek(0x08000003); err != nil {
		t.Fatalf("Failed to seek: %v", err)
	}
	b, err := r.Read(1)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if b[0] != 0xDD {
		t.Fatalf("Read expected=0x%X, got=0x%X", 0xDD, b[0])
	}
}

func TestOpenFileMissing(t *testing.T) {
	l, _ := test.NewNullLogger()
	_, err := OpenFile(l)(filepath.Join(t.TempDir(), "missing.bin"), 0, 0)
	if !errors.Is(err, ErrMemoryAccess) {
		t.Fatalf("Expected memory access error, got %v", err)
	}
}
