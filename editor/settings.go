// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-configurable editor preferences, persisted as
// TOML in the user config directory.
type Settings struct {

	// DragEpsilon is the minimum drag magnitude, in document units, below
	// which a finished drag gesture is treated as a no-op and reverted.
	DragEpsilon float32 `toml:"drag-epsilon"`

	// PreviewOpacity is the opacity applied to an element while it is
	// being interactively created, before the gesture commits.
	PreviewOpacity float32 `toml:"preview-opacity"`

	// CanvasWidth is the default width of a new document.
	CanvasWidth float32 `toml:"canvas-width"`

	// CanvasHeight is the default height of a new document.
	CanvasHeight float32 `toml:"canvas-height"`
}

// Defaults sets default settings values.
func (st *Settings) Defaults() {
	st.DragEpsilon = 0.01
	st.PreviewOpacity = 0.5
	st.CanvasWidth = 800
	st.CanvasHeight = 600
}

// DefaultSettings returns a Settings with default values.
func DefaultSettings() *Settings {
	st := &Settings{}
	st.Defaults()
	return st
}

// SettingsFilename returns the full path of the settings file.
func SettingsFilename() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "cogent-vector", "settings.toml")
}

// Open reads settings from the given file, on top of current values.
// A missing file is not an error; the current values stand.
func (st *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(b, st)
}

// Save writes settings to the given file, creating the directory as
// needed.
func (st *Settings) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
