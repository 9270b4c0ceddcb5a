package overlay

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"strings"
)

const helpLine = "j/k move  enter fold  a show all  r reload  q quit"

var (
	categoryStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	ownedStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	missingStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	errorStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	helpStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	detailStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// putText writes s from (x, y), advancing by each rune's display width, and
// stops at maxX. Returns the column after the last rune written.
func putText(scr tcell.Screen, x, y, maxX int, s string, st tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += w
	}
	return x
}

// wrap splits text into lines no wider than width columns.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	res := make([]string, 0)
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if runewidth.StringWidth(candidate) > width && line != "" {
				res = append(res, line)
				candidate = word
			}
			line = runewidth.Truncate(candidate, width, "")
		}
		res = append(res, line)
	}
	return res
}

func (v *View) rowStyle(r Row) tcell.Style {
	if p, ok := r.Part(); ok {
		if p.Owned() {
			return ownedStyle
		}
		return missingStyle
	}
	if b, ok := v.branch(r.category); ok && b.err != nil {
		return errorStyle
	}
	return categoryStyle
}

// Draw renders the tree, the detail pane below it, and the help line.
func Draw(scr tcell.Screen, v *View) {
	scr.Clear()
	w, h := scr.Size()
	if w <= 0 || h <= 0 {
		scr.Show()
		return
	}

	paneHeight := h / 4
	if paneHeight < 3 {
		paneHeight = 3
	}
	treeHeight := h - paneHeight - 2
	if treeHeight < 1 {
		treeHeight = 1
	}

	rows := v.Rows()
	top := 0
	if v.cursor >= treeHeight {
		top = v.cursor - treeHeight + 1
	}
	for i := 0; i < treeHeight && top+i < len(rows); i++ {
		r := rows[top+i]
		st := v.rowStyle(r)
		if top+i == v.cursor {
			st = st.Reverse(true)
		}
		putText(scr, r.depth*2, i, w, v.Label(r), st)
	}

	sep := treeHeight
	putText(scr, 0, sep, w, strings.Repeat("-", w), helpStyle)
	for i, line := range wrap(v.Detail(), w) {
		if i >= paneHeight {
			break
		}
		putText(scr, 0, sep+1+i, w, line, detailStyle)
	}

	status := v.status
	if v.showAll {
		status = "[all] " + status
	}
	x := putText(scr, 0, h-1, w, status, helpStyle)
	putText(scr, x+2, h-1, w, helpLine, helpStyle)
	scr.Show()
}
