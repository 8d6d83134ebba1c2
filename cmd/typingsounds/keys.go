// SPDX-License-Identifier: EPL-2.0

package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/ik5/typingsounds"
)

var namedKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyTab:        "Tab",
	tcell.KeyEscape:     "Escape",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
}

// punctuation maps a typed symbol to its physical key and whether it
// needs shift on a US layout.
var punctuation = map[rune]struct {
	code  string
	shift bool
}{
	'-': {"Minus", false}, '_': {"Minus", true},
	'=': {"Equal", false}, '+': {"Equal", true},
	'[': {"BracketLeft", false}, '{': {"BracketLeft", true},
	']': {"BracketRight", false}, '}': {"BracketRight", true},
	'\\': {"Backslash", false}, '|': {"Backslash", true},
	';': {"Semicolon", false}, ':': {"Semicolon", true},
	'\'': {"Quote", false}, '"': {"Quote", true},
	',': {"Comma", false}, '<': {"Comma", true},
	'.': {"Period", false}, '>': {"Period", true},
	'/': {"Slash", false}, '?': {"Slash", true},
	'`': {"Backquote", false}, '~': {"Backquote", true},
	'!': {"Digit1", true}, '@': {"Digit2", true}, '#': {"Digit3", true},
	'$': {"Digit4", true}, '%': {"Digit5", true}, '^': {"Digit6", true},
	'&': {"Digit7", true}, '*': {"Digit8", true}, '(': {"Digit9", true},
	')': {"Digit0", true},
}

// keyEvent converts a terminal key press to a KeyEvent. Terminals report
// characters rather than physical keys, so shift is inferred from the
// character. ok is false for keys without a code.
func keyEvent(ev *tcell.EventKey) (typingsounds.KeyEvent, bool) {
	mod := ev.Modifiers()
	e := typingsounds.KeyEvent{
		Alt:   mod&tcell.ModAlt != 0,
		Ctrl:  mod&tcell.ModCtrl != 0,
		Meta:  mod&tcell.ModMeta != 0,
		Shift: mod&tcell.ModShift != 0,
	}

	if ev.Key() != tcell.KeyRune {
		if code, ok := namedKeys[ev.Key()]; ok {
			e.Code = code
			return e, true
		}
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			e.Code = "Key" + string(rune('A'+ev.Key()-tcell.KeyCtrlA))
			e.Ctrl = true
			return e, true
		}
		if ev.Key() >= tcell.KeyF1 && ev.Key() <= tcell.KeyF12 {
			e.Code = "F" + strconv.Itoa(int(ev.Key()-tcell.KeyF1)+1)
			return e, true
		}
		return e, false
	}

	r := ev.Rune()
	switch {
	case r == ' ':
		e.Code = "Space"
	case r >= 'a' && r <= 'z':
		e.Code = "Key" + string(r-'a'+'A')
	case r >= 'A' && r <= 'Z':
		e.Code = "Key" + string(r)
		e.Shift = true
	case r >= '0' && r <= '9':
		e.Code = "Digit" + string(r)
	default:
		p, ok := punctuation[r]
		if !ok {
			return e, false
		}
		e.Code = p.code
		e.Shift = e.Shift || p.shift
	}
	return e, true
}
