package overlay

import (
	"atlas-parts/catalog"
)

// branch is one category of the tree with its decoded parts.
type branch struct {
	name     string
	parts    []catalog.Part
	owned    int
	err      error
	expanded bool
}

func (b branch) total() int {
	return len(b.parts)
}

// Row is a single visible line of the tree.
type Row struct {
	category string
	part     *catalog.Part
	depth    int
}

func (r Row) Category() string {
	return r.category
}

func (r Row) IsCategory() bool {
	return r.part == nil
}

func (r Row) Part() (catalog.Part, bool) {
	if r.part == nil {
		return catalog.Part{}, false
	}
	return *r.part, true
}

func (r Row) Depth() int {
	return r.depth
}
