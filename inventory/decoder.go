package inventory

import (
	"atlas-parts/category"
	"atlas-parts/layout"
	"atlas-parts/memory"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	pointerSize    = 4
	identifierSize = 4
	countSize      = 1
)

var ErrCorruptLayout = errors.New("corrupt inventory layout")

func accessError(err error) error {
	if errors.Is(err, memory.ErrMemoryAccess) {
		return err
	}
	return fmt.Errorf("%w: %v", memory.ErrMemoryAccess, err)
}

func readAt(r memory.Reader, offset uint64, n int) ([]byte, error) {
	if err := r.Seek(offset); err != nil {
		return nil, accessError(err)
	}
	b, err := r.Read(n)
	if err != nil {
		return nil, accessError(err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: expected [%d] bytes at [0x%X], got [%d]", memory.ErrMemoryAccess, n, offset, len(b))
	}
	return b, nil
}

// resolveBase follows the inventory table pointer and applies the fixed displacement.
func resolveBase(r memory.Reader, lm layout.Model) (uint64, error) {
	b, err := readAt(r, lm.PointerAddress(), pointerSize)
	if err != nil {
		return 0, err
	}
	return uint64(binary.LittleEndian.Uint32(b)) + lm.BaseDisplacement(), nil
}

// ownedIdentifiers reads the count byte of the category slot and then exactly
// that many identifiers. Entries past the count are stale and never read.
func ownedIdentifiers(r memory.Reader, lm layout.Model, base uint64, c category.Model) ([]uint32, error) {
	cb, err := readAt(r, lm.CountAddress(base, c), countSize)
	if err != nil {
		return nil, err
	}
	count := uint32(cb[0])
	if count > lm.MaxOwned() {
		return nil, fmt.Errorf("%w: category [%s] reports [%d] owned, maximum is [%d]", ErrCorruptLayout, c.Name(), count, lm.MaxOwned())
	}

	ids := make([]uint32, 0, count)
	if count == 0 {
		return ids, nil
	}
	b, err := readAt(r, lm.SlotOffset(base, c), int(count)*identifierSize)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		ids = append(ids, binary.LittleEndian.Uint32(b[i*identifierSize:]))
	}
	return ids, nil
}
