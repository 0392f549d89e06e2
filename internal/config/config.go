package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for in the working directory.
const DefaultPath = ".makefmt.yaml"

// File is the on-disk configuration shape.
type File struct {
	// Enabled gates the whole rewrite pipeline. Pointer so that an absent
	// key is distinguishable from an explicit false.
	Enabled *bool  `yaml:"enabled,omitempty"`
	Theme   string `yaml:"theme,omitempty"`
	NoColor bool   `yaml:"no_color"`
}

// Flags holds the command-line values relevant to resolution, with Set
// markers so that an untouched flag does not shadow the file.
type Flags struct {
	Raw      bool
	RawSet   bool
	Theme    string
	ThemeSet bool
}

// Settings is the fully resolved configuration the rest of the program
// consumes. Resolution order: CLI flags, then environment, then file, then
// defaults.
type Settings struct {
	Enabled bool
	Theme   string
	NoColor bool
}

// Load reads a config file. A missing file is not an error: the zero File
// stands in and defaults apply. A file that exists but does not parse is an
// error, since silently ignoring a typo in an explicit config is worse than
// stopping.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &f, nil
}

// Resolve merges flags, environment, and file into final settings.
func Resolve(f *File, flags Flags) Settings {
	s := Settings{Enabled: true, Theme: "default"}

	if f.Enabled != nil {
		s.Enabled = *f.Enabled
	}
	if f.Theme != "" {
		s.Theme = f.Theme
	}
	s.NoColor = f.NoColor

	if os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}
	if t := os.Getenv("MAKEFMT_THEME"); t != "" {
		s.Theme = t
	}

	if flags.ThemeSet {
		s.Theme = flags.Theme
	}
	if flags.RawSet && flags.Raw {
		s.Enabled = false
	}
	return s
}
