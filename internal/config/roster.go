package config

import (
	"errors"
	"fmt"
)

var ErrInvalidRoster = errors.New("invalid roster")

// RosterConfig is the fully formed pair of rosters handed to the engine.
type RosterConfig struct {
	Slots   int            `yaml:"slots"`
	Allies  []CharacterDef `yaml:"allies"`
	Enemies []CharacterDef `yaml:"enemies"`
}

// DefaultRange is the reach of a character whose definition omits range.
const DefaultRange = 1

type CharacterDef struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Damage int    `yaml:"damage"`
	// Range is nil when omitted; an explicit 0 only reaches distance 0.
	Range   *int   `yaml:"range"`
	Ability string `yaml:"ability"`
	// Charges overrides the tuned potion charge count when set.
	Charges *int   `yaml:"charges"`
	Note    string `yaml:"note"`
}

// ReachOrDefault returns the configured range, or DefaultRange when unset.
func (d CharacterDef) ReachOrDefault() int {
	if d.Range == nil {
		return DefaultRange
	}
	return *d.Range
}

func (rc *RosterConfig) applyDefaults() {
	if rc.Slots == 0 {
		rc.Slots = max(len(rc.Allies), len(rc.Enemies), 1)
	}
}

// Validate checks stats and side sizes. Ability names are checked by the
// engine when the roster is instantiated.
func (rc *RosterConfig) Validate() error {
	if rc.Slots <= 0 {
		return fmt.Errorf("%w: slots must be positive", ErrInvalidRoster)
	}
	if len(rc.Allies) > rc.Slots || len(rc.Enemies) > rc.Slots {
		return fmt.Errorf("%w: %d slots cannot hold %d allies and %d enemies",
			ErrInvalidRoster, rc.Slots, len(rc.Allies), len(rc.Enemies))
	}
	if err := validateSide("allies", rc.Allies); err != nil {
		return err
	}
	return validateSide("enemies", rc.Enemies)
}

func validateSide(side string, defs []CharacterDef) error {
	for i, d := range defs {
		if err := d.validate(); err != nil {
			return fmt.Errorf("%w: %s[%d] %q: %v", ErrInvalidRoster, side, i, d.Name, err)
		}
	}
	return nil
}

func (d CharacterDef) validate() error {
	switch {
	case d.Health <= 0:
		return fmt.Errorf("health must be positive, got %d", d.Health)
	case d.Damage < 0:
		return fmt.Errorf("damage must not be negative, got %d", d.Damage)
	case d.Range != nil && *d.Range < 0:
		return fmt.Errorf("range must not be negative, got %d", *d.Range)
	case d.Charges != nil && *d.Charges < 0:
		return fmt.Errorf("charges must not be negative, got %d", *d.Charges)
	}
	return nil
}
