// SPDX-License-Identifier: EPL-2.0

// Package settings persists the user's mute and volume preferences.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Settings are the user preferences.
type Settings struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

// Defaults are used for every key the stored document lacks.
func Defaults() Settings {
	return Settings{Muted: false, Volume: 1.0}
}

// Clamped returns s with Volume limited to [0,1]. A NaN volume is
// replaced by the default.
func (s Settings) Clamped() Settings {
	if math.IsNaN(s.Volume) {
		s.Volume = Defaults().Volume
	}
	s.Volume = max(0, min(1, s.Volume))
	return s
}

// Store loads and saves settings. Load always returns usable settings,
// falling back to Defaults when it also returns an error.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FileStore keeps settings in a TOML file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string { return f.path }

// Load decodes the file over Defaults, so missing keys keep their
// default values. A missing file is not an error.
func (f *FileStore) Load() (Settings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("reading settings %s: %w", f.path, err)
	}

	s := Defaults()
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Defaults(), fmt.Errorf("%w: %s: %w", ErrInvalidDocument, f.path, err)
	}
	return s.Clamped(), nil
}

// Save writes the whole document, replacing the file atomically.
func (f *FileStore) Save(s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.Clamped()); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing settings %s: %w", f.path, err)
	}
	return nil
}

// MemoryStore keeps settings in memory. The zero value holds Defaults.
type MemoryStore struct {
	mu    sync.Mutex
	s     *Settings
	saves int
	// SaveErr, when set, is returned by Save.
	SaveErr error
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{s: &s}
}

func (m *MemoryStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.s == nil {
		return Defaults(), nil
	}
	return m.s.Clamped(), nil
}

func (m *MemoryStore) Save(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	s = s.Clamped()
	m.s = &s
	m.saves++
	return nil
}

// Saves counts successful Save calls.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}
