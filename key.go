// SPDX-License-Identifier: EPL-2.0

package typingsounds

// KeyEvent is a key press as reported by the host. Code names the
// physical key the way browsers do: "KeyA", "Digit1", "Space", "Enter".
type KeyEvent struct {
	Code  string
	Alt   bool
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Modified reports whether any modifier is held. Shortcuts do not click.
func (e KeyEvent) Modified() bool {
	return e.Alt || e.Ctrl || e.Meta || e.Shift
}

// Category selects which clip a key plays.
type Category uint8

const (
	Key Category = iota
	Space
	Enter
)

// Categories lists every category in pool order.
var Categories = []Category{Key, Space, Enter}

func (c Category) String() string {
	switch c {
	case Key:
		return "key"
	case Space:
		return "space"
	case Enter:
		return "enter"
	default:
		return "unknown"
	}
}

// Resource is the id handed to Host.LocateResource for c.
func (c Category) Resource() string { return c.String() }

// CategoryFor maps a key code to its category.
func CategoryFor(code string) Category {
	switch code {
	case "Enter", "NumpadEnter":
		return Enter
	case "Space", "Backspace":
		return Space
	default:
		return Key
	}
}

// SeedFor derives the pitch seed of a key code by reading the longest
// leading run of letters and digits as a case-insensitive base-36 number,
// wrapping at 32 bits. The same code always yields the same seed; codes
// without such a prefix yield 0.
func SeedFor(code string) int64 {
	var acc uint32
	for i := range len(code) {
		d, ok := base36(code[i])
		if !ok {
			break
		}
		acc = acc*36 + d
	}
	return int64(acc)
}

func base36(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}
