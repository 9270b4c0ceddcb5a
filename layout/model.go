package layout

import (
	"atlas-parts/category"
	"atlas-parts/target"
	"errors"
	"fmt"
)

const identifierSize = 4

// Model holds the fixed binary layout of the inventory table for one target.
type Model struct {
	target           target.Model
	pointerAddress   uint64
	baseDisplacement uint64
	slotStride       uint64
	maxOwned         uint32
	countOffset      uint64
	categories       category.Registry
}

func (m Model) Target() target.Model {
	return m.target
}

// PointerAddress is the absolute address holding the inventory table pointer.
func (m Model) PointerAddress() uint64 {
	return m.pointerAddress
}

func (m Model) BaseDisplacement() uint64 {
	return m.baseDisplacement
}

func (m Model) SlotStride() uint64 {
	return m.slotStride
}

func (m Model) MaxOwned() uint32 {
	return m.maxOwned
}

// CountOffset is the offset of the single byte owned count within a slot.
func (m Model) CountOffset() uint64 {
	return m.countOffset
}

func (m Model) Categories() category.Registry {
	return m.categories
}

// SlotOffset returns the absolute address of a category slot given a resolved table base.
func (m Model) SlotOffset(base uint64, c category.Model) uint64 {
	return base + uint64(c.Ordinal())*m.slotStride
}

func (m Model) CountAddress(base uint64, c category.Model) uint64 {
	return m.SlotOffset(base, c) + m.countOffset
}

type Builder struct {
	target           target.Model
	pointerAddress   uint64
	baseDisplacement uint64
	slotStride       uint64
	maxOwned         uint32
	countOffset      uint64
	categories       []category.Model
}

func NewBuilder() *Builder {
	return &Builder{categories: make([]category.Model, 0)}
}

func (b *Builder) SetTarget(t target.Model) *Builder {
	b.target = t
	return b
}

func (b *Builder) SetPointerAddress(address uint64) *Builder {
	b.pointerAddress = address
	return b
}

func (b *Builder) SetBaseDisplacement(displacement uint64) *Builder {
	b.baseDisplacement = displacement
	return b
}

func (b *Builder) SetSlotStride(stride uint64) *Builder {
	b.slotStride = stride
	return b
}

func (b *Builder) SetMaxOwned(maxOwned uint32) *Builder {
	b.maxOwned = maxOwned
	return b
}

// SetCountOffset overrides the count field position. When left at zero the
// count is expected directly after the identifier array.
func (b *Builder) SetCountOffset(offset uint64) *Builder {
	b.countOffset = offset
	return b
}

func (b *Builder) AddCategory(name string, ordinal uint32, total uint32) *Builder {
	b.categories = append(b.categories, category.NewModel(name, ordinal, total))
	return b
}

func (b *Builder) Build() (Model, error) {
	if b.slotStride == 0 {
		return Model{}, errors.New("slot stride must be greater than zero")
	}
	if b.maxOwned == 0 {
		return Model{}, errors.New("max owned must be greater than zero")
	}
	if b.maxOwned > 0xFF {
		return Model{}, fmt.Errorf("max owned [%d] cannot be represented by a single byte count", b.maxOwned)
	}
	countOffset := b.countOffset
	if countOffset == 0 {
		countOffset = uint64(b.maxOwned) * identifierSize
	}
	if uint64(b.maxOwned)*identifierSize > countOffset {
		return Model{}, fmt.Errorf("identifier array of [%d] entries overlaps count field at [0x%X]", b.maxOwned, countOffset)
	}
	if countOffset >= b.slotStride {
		return Model{}, fmt.Errorf("count field at [0x%X] lies outside slot stride [0x%X]", countOffset, b.slotStride)
	}
	r, err := category.NewRegistry(b.categories...)
	if err != nil {
		return Model{}, err
	}
	if r.Len() == 0 {
		return Model{}, errors.New("layout declares no categories")
	}
	return Model{
		target:           b.target,
		pointerAddress:   b.pointerAddress,
		baseDisplacement: b.baseDisplacement,
		slotStride:       b.slotStride,
		maxOwned:         b.maxOwned,
		countOffset:      countOffset,
		categories:       r,
	}, nil
}
