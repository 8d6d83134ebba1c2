// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ik5/typingsounds"
)

const volumeStep = 0.1

var helpLines = []string{
	"F1      close this help",
	"F2      toggle mute",
	"F3/F4   volume down/up",
	"Esc     quit",
	"",
	"Keys click while the terminal is focused and",
	"no modifier is held.",
}

// scratchPad is a minimal text area that clicks as you type.
type scratchPad struct {
	screen tcell.Screen
	host   *terminalHost
	plugin *typingsounds.Plugin
	log    zerolog.Logger

	lines  [][]rune
	help   bool
	status string
}

func newScratchPad(screen tcell.Screen, host *terminalHost, plugin *typingsounds.Plugin, log zerolog.Logger) *scratchPad {
	return &scratchPad{
		screen: screen,
		host:   host,
		plugin: plugin,
		log:    log,
		lines:  [][]rune{nil},
	}
}

// run draws and handles events until the user quits or the screen is
// finalized.
func (s *scratchPad) run() {
	s.draw()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if !s.handle(ev) {
			return
		}
		s.draw()
	}
}

// handle reports false when the user asked to quit.
func (s *scratchPad) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()

	case *tcell.EventFocus:
		s.host.setFocused(ev.Focused)
		s.log.Debug().Bool("focused", ev.Focused).Msg("focus changed")

	case *tcell.EventKey:
		return s.handleKey(ev)
	}

	return true
}

func (s *scratchPad) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyF1:
		s.help = !s.help
		s.host.setOverlay(s.help)
		return true

	case tcell.KeyF2:
		muted, err := s.plugin.ToggleMute()
		s.report(err, fmt.Sprintf("muted: %t", muted))
		return true

	case tcell.KeyF3, tcell.KeyF4:
		v := s.plugin.Settings().Volume
		if ev.Key() == tcell.KeyF3 {
			v -= volumeStep
		} else {
			v += volumeStep
		}
		err := s.plugin.SetVolume(v)
		s.report(err, fmt.Sprintf("volume: %.0f%%", s.plugin.Settings().Volume*100))
		return true
	}

	if e, ok := keyEvent(ev); ok {
		s.host.dispatch(e)
	}
	if !s.help {
		s.edit(ev)
	}
	return true
}

func (s *scratchPad) report(err error, msg string) {
	if err != nil {
		s.status = "error: " + err.Error()
		return
	}
	s.status = msg
}

func (s *scratchPad) edit(ev *tcell.EventKey) {
	last := len(s.lines) - 1

	switch ev.Key() {
	case tcell.KeyEnter:
		s.lines = append(s.lines, nil)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		switch {
		case len(s.lines[last]) > 0:
			s.lines[last] = s.lines[last][:len(s.lines[last])-1]
		case last > 0:
			s.lines = s.lines[:last]
		}
	case tcell.KeyRune:
		s.lines[last] = append(s.lines[last], ev.Rune())
	}
}

func (s *scratchPad) text() string {
	out := ""
	for i, line := range s.lines {
		if i > 0 {
			out += "\n"
		}
		out += string(line)
	}
	return out
}

func (s *scratchPad) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()

	st := s.plugin.Settings()
	header := fmt.Sprintf(" typingsounds  muted: %t  volume: %.0f%%  F1 help ", st.Muted, st.Volume*100)
	if s.status != "" {
		header += " " + s.status
	}
	s.putLine(0, header, tcell.StyleDefault.Reverse(true), width)

	if s.help {
		for i, line := range helpLines {
			s.putLine(2+i, " "+line, tcell.StyleDefault, width)
		}
		s.screen.Show()
		return
	}

	// Keep the cursor line visible
	rows := height - 1
	first := max(0, len(s.lines)-rows)
	for i, line := range s.lines[first:] {
		s.putLine(1+i, string(line), tcell.StyleDefault, width)
	}

	cursorY := 1 + len(s.lines) - 1 - first
	cursorX := min(len(s.lines[len(s.lines)-1]), width-1)
	s.screen.ShowCursor(cursorX, cursorY)
	s.screen.Show()
}

func (s *scratchPad) putLine(y int, text string, style tcell.Style, width int) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	if style != tcell.StyleDefault {
		for ; x < width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
