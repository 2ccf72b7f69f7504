package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	RosterFile = "roster.yaml"
	TuningFile = "tuning.toml"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads, defaults and validates a roster file.
func LoadRoster(path string) (*RosterConfig, error) {
	var rc RosterConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	rc.applyDefaults()
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	return &rc, nil
}

// LoadTuning decodes a TOML tuning file over the defaults. A missing file
// yields the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, t); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return nil, fmt.Errorf("load tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// LoadAll loads roster.yaml and tuning.toml from dir.
func LoadAll(dir string) (*RosterConfig, *Tuning, error) {
	rc, err := LoadRoster(filepath.Join(dir, RosterFile))
	if err != nil {
		return nil, nil, err
	}
	t, err := LoadTuning(filepath.Join(dir, TuningFile))
	if err != nil {
		return nil, nil, err
	}
	return rc, t, nil
}
