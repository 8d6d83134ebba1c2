// SPDX-License-Identifier: EPL-2.0

// Package typingsounds plays a short click for every keystroke.
//
// A Plugin keeps one voice pool per sound category (ordinary keys, the
// space bar and backspace, enter). Each keystroke the host reports is
// handed to the matching pool, which starts an idle voice or drops the
// keystroke when every voice is still sounding. The playback rate of each
// click is nudged by a value derived from the key code, so a key always
// sounds the same while neighbouring keys sound slightly different.
//
// # Hosts
//
// The Plugin talks to its environment through two narrow interfaces:
//   - Host locates the key, space and enter clips, reports whether the
//     focused input should click at all, and delivers key events.
//   - voice.Backend loads and plays clips. The playback package provides
//     one on top of the system audio device.
//
// # Quick Start
//
//	player, _ := playback.Open(formats.NewRegistry(), 44100, 20*time.Millisecond)
//	defer player.Close()
//
//	plugin := typingsounds.New(host, player, settings.NewFileStore(path))
//	if err := plugin.Load(); err != nil {
//		return err
//	}
//	defer plugin.Unload()
//
// # Settings
//
// Mute and volume are loaded once in Load and saved on every change.
// A broken settings document never stops the Plugin; defaults are used.
package typingsounds
