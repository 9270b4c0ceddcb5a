package overlay

import (
	"github.com/gdamore/tcell/v2"
)

// HandleKey applies a key press to the view. Returns false when the overlay should exit.
func HandleKey(v *View, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		v.Up()
		return true
	case tcell.KeyDown:
		v.Down()
		return true
	case tcell.KeyEnter:
		v.ToggleExpanded()
		return true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	}
	switch ev.Rune() {
	case 'k', 'K':
		v.Up()
	case 'j', 'J':
		v.Down()
	case ' ':
		v.ToggleExpanded()
	case 'a', 'A':
		v.ToggleShowAll()
	case 'r', 'R':
		v.Reload()
	case 'q', 'Q':
		return false
	}
	return true
}

// Run loads the view and blocks on the screen until the user quits.
func Run(scr tcell.Screen, v *View) {
	v.Load()
	Draw(scr, v)
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			if !HandleKey(v, ev) {
				return
			}
		}
		Draw(scr, v)
	}
}
