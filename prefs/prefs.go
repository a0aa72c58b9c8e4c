// Package prefs loads the editor preferences and language definitions from
// files. Preferences are JSON by default; YAML and TOML are picked by file
// extension.
package prefs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fivemoreminix/vexed/ui/buffer"
)

// Preferences are the user settings of the editor.
type Preferences struct {
	LibraryPath             string                `json:"library_path" yaml:"library_path" toml:"library_path"`
	WarnBeforeDeletingAFile bool                  `json:"warn_before_deleting_a_file" yaml:"warn_before_deleting_a_file" toml:"warn_before_deleting_a_file"`
	ColorScheme             map[string]buffer.RGB `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
	TabSize                 int                   `json:"tab_size" yaml:"tab_size" toml:"tab_size"`
	UseHardTabs             bool                  `json:"use_hard_tabs" yaml:"use_hard_tabs" toml:"use_hard_tabs"`
}

// Default returns the preferences used when no file exists. A nil ColorScheme
// means the built-in one.
func Default() *Preferences {
	return &Preferences{
		WarnBeforeDeletingAFile: true,
		TabSize:                 4,
		UseHardTabs:             true,
	}
}

// Load reads the preferences at path. Keys missing from the file keep their
// defaults, and a missing file yields Default().
func Load(path string) (*Preferences, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	} else if err != nil {
		return nil, err
	}

	if err := decode(path, data, p); err != nil {
		return nil, err
	}

	if p.TabSize <= 0 {
		p.TabSize = Default().TabSize
	}
	return p, nil
}
