package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// EnvFile names an explicit defaults file, taking precedence over the XDG paths.
const EnvFile = "LANOTA_CONFIG"

const maxTarget = 1000000

var (
	Formats    = []string{"text", "json", "yaml"}
	ColorModes = []string{"auto", "always", "never"}
)

// File holds defaults read from config.toml. Command line flags win over it.
type File struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	Level  string `toml:"level"`
}

func DefaultFile() File {
	return File{
		Format: "text",
		Color:  "auto",
	}
}

// Load reads path, or the first config.toml found under the XDG locations
// when path is empty. No file at all leaves the defaults.
func Load(path string) (File, error) {
	file := DefaultFile()

	if path != "" {
		if _, err := toml.DecodeFile(path, &file); nil != err {
			return file, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
		return file, file.validate()
	}

	for _, p := range configPaths() {
		if _, err := os.Stat(p); nil != err {
			continue
		}
		if _, err := toml.DecodeFile(p, &file); nil != err {
			return file, fmt.Errorf("unable to parse config %s: %w", p, err)
		}
		break
	}
	return file, file.validate()
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "lanota", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "lanota", "config.toml"))
	}
	return paths
}

func (f File) validate() error {
	if !slices.Contains(Formats, f.Format) {
		return fmt.Errorf("invalid format %q in config", f.Format)
	}
	if !slices.Contains(ColorModes, f.Color) {
		return fmt.Errorf("invalid color %q in config", f.Color)
	}
	return nil
}
