// SPDX-License-Identifier: EPL-2.0

package typingsounds

// Host is everything the Plugin needs from the program embedding it.
type Host interface {
	// LocateResource resolves a clip id ("key", "space", "enter") to a
	// reference the voice backend can load.
	LocateResource(id string) (string, error)
	// IsEligibleInputContext reports whether the focused input should
	// click, e.g. a text editor without an open completion popup.
	IsEligibleInputContext() bool
	// OnKeyEvent registers handler for key presses. Calling the returned
	// function removes it.
	OnKeyEvent(handler func(KeyEvent)) (unregister func())
}
