package overlay

import (
	"atlas-parts/catalog"
	"atlas-parts/inventory"
	"context"
	"fmt"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
)

const (
	markOwned   = "✅"
	markMissing = "❌"
)

// View holds the navigable state of the part tracker.
type View struct {
	l         logrus.FieldLogger
	ctx       context.Context
	s         *inventory.Session
	cm        catalog.Model
	listeners []model.Operator[inventory.Snapshot]
	branches  []branch
	collapsed map[string]bool
	showAll   bool
	cursor    int
	status    string
}

func NewView(l logrus.FieldLogger, ctx context.Context, s *inventory.Session, cm catalog.Model, listeners ...model.Operator[inventory.Snapshot]) *View {
	return &View{
		l:         l,
		ctx:       ctx,
		s:         s,
		cm:        cm,
		listeners: listeners,
		collapsed: make(map[string]bool),
	}
}

// Load decodes every category with a non empty catalog and rebuilds the tree.
func (v *View) Load() {
	bs := make([]branch, 0)
	failed := 0
	for _, c := range v.s.Categories().All() {
		if v.cm.Len(c.Name()) == 0 {
			continue
		}
		b := branch{name: c.Name(), expanded: !v.collapsed[c.Name()]}
		o, err := inventory.OwnedWithRecovery(v.l, v.ctx, v.s)(c.Name())
		if err != nil {
			b.err = err
			b.parts = catalog.Parts(v.cm)(c.Name(), nil)
			failed++
		} else {
			b.parts = catalog.Parts(v.cm)(c.Name(), o.Identifiers())
			for _, p := range b.parts {
				if p.Owned() {
					b.owned++
				}
			}
		}
		bs = append(bs, b)
	}
	v.branches = bs
	if failed > 0 {
		v.status = fmt.Sprintf("Unable to read %d categories.", failed)
	} else {
		v.status = fmt.Sprintf("Session %s.", v.s.Id().String())
	}
	v.clampCursor()
}

// Reload re-resolves the inventory table, notifies listeners, then rebuilds the tree.
func (v *View) Reload() {
	snapshot, err := inventory.Reload(v.l, v.ctx, v.s)
	if err != nil {
		v.Load()
		v.status = fmt.Sprintf("Reload failed: %s", err.Error())
		return
	}
	for _, op := range v.listeners {
		if err = op(snapshot); err != nil {
			v.l.WithError(err).Errorf("Reload listener failed for session [%s].", snapshot.SessionId().String())
		}
	}
	v.Load()
}

func (v *View) ShowAll() bool {
	return v.showAll
}

func (v *View) ToggleShowAll() {
	v.showAll = !v.showAll
	v.clampCursor()
}

// ToggleExpanded collapses or expands the category under the cursor.
func (v *View) ToggleExpanded() {
	r, ok := v.Selected()
	if !ok {
		return
	}
	v.collapsed[r.category] = !v.collapsed[r.category]
	for i := range v.branches {
		if v.branches[i].name == r.category {
			v.branches[i].expanded = !v.collapsed[r.category]
		}
	}
	rows := v.Rows()
	for i, rr := range rows {
		if rr.IsCategory() && rr.category == r.category {
			v.cursor = i
			break
		}
	}
}

func (v *View) Up() {
	if v.cursor > 0 {
		v.cursor--
	}
}

func (v *View) Down() {
	if v.cursor < len(v.Rows())-1 {
		v.cursor++
	}
}

func (v *View) Cursor() int {
	return v.cursor
}

func (v *View) Status() string {
	return v.status
}

// Rows returns the visible lines. Owned parts are hidden unless show all is set.
func (v *View) Rows() []Row {
	res := make([]Row, 0)
	for _, b := range v.branches {
		res = append(res, Row{category: b.name})
		if !b.expanded {
			continue
		}
		for i := range b.parts {
			p := b.parts[i]
			if p.Owned() && !v.showAll {
				continue
			}
			res = append(res, Row{category: b.name, part: &p, depth: 1})
		}
	}
	return res
}

func (v *View) Selected() (Row, bool) {
	rows := v.Rows()
	if v.cursor < 0 || v.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[v.cursor], true
}

// Label is the tree text for a row.
func (v *View) Label(r Row) string {
	if p, ok := r.Part(); ok {
		mark := markMissing
		if p.Owned() {
			mark = markOwned
		}
		return fmt.Sprintf("%s %s", mark, p.Name())
	}
	b, ok := v.branch(r.category)
	if !ok {
		return r.category
	}
	arrow := "+"
	if b.expanded {
		arrow = "-"
	}
	if b.err != nil {
		return fmt.Sprintf("%s %s (unreadable)", arrow, b.name)
	}
	return fmt.Sprintf("%s %s (%d/%d)", arrow, b.name, b.owned, b.total())
}

// Detail is the text shown for the selected row: the unlock condition of a part
// or the read error of a category.
func (v *View) Detail() string {
	r, ok := v.Selected()
	if !ok {
		return ""
	}
	if p, ok := r.Part(); ok {
		return p.Unlock()
	}
	b, ok := v.branch(r.category)
	if !ok {
		return ""
	}
	if b.err != nil {
		return b.err.Error()
	}
	return fmt.Sprintf("%d of %d %s parts owned.", b.owned, b.total(), b.name)
}

func (v *View) branch(name string) (branch, bool) {
	for _, b := range v.branches {
		if b.name == name {
			return b, true
		}
	}
	return branch{}, false
}

func (v *View) clampCursor() {
	n := len(v.Rows())
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}
