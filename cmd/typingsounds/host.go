// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ik5/typingsounds"
	"github.com/ik5/typingsounds/formats"
)

var errSoundNotFound = errors.New("sound not found")

// terminalHost is the typingsounds.Host of the terminal scratch pad.
// Keys click while the terminal has focus and no overlay is open.
type terminalHost struct {
	soundsDir string

	mu       sync.Mutex
	focused  bool
	overlay  bool
	handlers map[uint64]func(typingsounds.KeyEvent)
	nextID   uint64
}

var _ typingsounds.Host = (*terminalHost)(nil)

func newTerminalHost(soundsDir string) *terminalHost {
	return &terminalHost{
		soundsDir: soundsDir,
		focused:   true,
		handlers:  make(map[uint64]func(typingsounds.KeyEvent)),
	}
}

// LocateResource finds <id>.<ext> in the sounds directory, trying every
// supported extension in order.
func (h *terminalHost) LocateResource(id string) (string, error) {
	for _, ext := range formats.Extensions {
		path := filepath.Join(h.soundsDir, id+"."+ext)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %s", errSoundNotFound, id, h.soundsDir)
}

func (h *terminalHost) IsEligibleInputContext() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.focused && !h.overlay
}

func (h *terminalHost) OnKeyEvent(handler func(typingsounds.KeyEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.handlers[id] = handler

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers, id)
	}
}

func (h *terminalHost) setFocused(focused bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focused = focused
}

func (h *terminalHost) setOverlay(open bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.overlay = open
}

// dispatch delivers e to every registered handler.
func (h *terminalHost) dispatch(e typingsounds.KeyEvent) {
	h.mu.Lock()
	handlers := make([]func(typingsounds.KeyEvent), 0, len(h.handlers))
	for _, fn := range h.handlers {
		handlers = append(handlers, fn)
	}
	h.mu.Unlock()

	for _, fn := range handlers {
		fn(e)
	}
}
