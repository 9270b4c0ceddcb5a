package category

import (
	"errors"
	"fmt"
	"strings"
)

const (
	TypeHeads     = "HEADS"
	TypeCores     = "CORES"
	TypeArms      = "ARMS"
	TypeLegs      = "LEGS"
	TypeBooster   = "BOOSTER"
	TypeFCS       = "FCS"
	TypeGenerator = "GENERATOR"
	TypeRadiator  = "RADIATOR"
	TypeInside    = "INSIDE"
	TypeExtension = "EXTENSION"
	TypeBackUnit  = "BACK_UNIT"
	TypeArmUnitR  = "ARM_UNIT_R"
	TypeArmUnitL  = "ARM_UNIT_L"
	TypeOptional  = "OPTIONAL"
)

var ErrInvalidCategory = errors.New("invalid category")

// Model is a single equipment class. The ordinal positions the category's slot
// inside the inventory table, the total is the number of parts the game defines.
type Model struct {
	name    string
	ordinal uint32
	total   uint32
}

func NewModel(name string, ordinal uint32, total uint32) Model {
	return Model{
		name:    strings.ToUpper(name),
		ordinal: ordinal,
		total:   total,
	}
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Ordinal() uint32 {
	return m.ordinal
}

func (m Model) Total() uint32 {
	return m.total
}

func (m Model) String() string {
	return m.name
}

// Registry is the declared, ordered set of categories for one layout.
type Registry struct {
	categories []Model
	byName     map[string]Model
}

func NewRegistry(categories ...Model) (Registry, error) {
	r := Registry{
		categories: make([]Model, 0, len(categories)),
		byName:     make(map[string]Model, len(categories)),
	}
	ordinals := make(map[uint32]string, len(categories))
	for _, c := range categories {
		if c.Name() == "" {
			return Registry{}, errors.New("category name must not be empty")
		}
		if _, ok := r.byName[c.Name()]; ok {
			return Registry{}, fmt.Errorf("category [%s] declared more than once", c.Name())
		}
		if other, ok := ordinals[c.Ordinal()]; ok {
			return Registry{}, fmt.Errorf("category [%s] reuses ordinal [%d] of [%s]", c.Name(), c.Ordinal(), other)
		}
		ordinals[c.Ordinal()] = c.Name()
		r.byName[c.Name()] = c
		r.categories = append(r.categories, c)
	}
	return r, nil
}

func (r Registry) All() []Model {
	res := make([]Model, len(r.categories))
	copy(res, r.categories)
	return res
}

func (r Registry) Names() []string {
	res := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		res = append(res, c.Name())
	}
	return res
}

func (r Registry) ByName(name string) (Model, error) {
	if c, ok := r.byName[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return Model{}, fmt.Errorf("%w: [%s]", ErrInvalidCategory, name)
}

func (r Registry) Len() int {
	return len(r.categories)
}
