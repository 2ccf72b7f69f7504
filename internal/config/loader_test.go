package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const rosterYAML = `
slots: 3
allies:
  - name: knight
    health: 10
    damage: 2
    ability: parry
  - name: ranger
    health: 6
    damage: 1
    range: 3
    ability: volley
enemies:
  - name: slime
    health: 4
    damage: 1
    ability: acid_burst
    charges: 2
`

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAllDefaultsTuningWhenMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RosterFile, rosterYAML)

	rc, tuning, err := LoadAll(dir)
	if err != nil {
		t.Fatal(err)
	}
	if rc.Slots != 3 || len(rc.Allies) != 2 || len(rc.Enemies) != 1 {
		t.Fatalf("unexpected roster %+v", rc)
	}
	if rc.Allies[0].Range != nil || rc.Allies[0].ReachOrDefault() != DefaultRange {
		t.Fatalf("expected default range, got %v", rc.Allies[0].Range)
	}
	if rc.Allies[1].ReachOrDefault() != 3 || rc.Allies[1].Ability != "volley" {
		t.Fatalf("unexpected ranger %+v", rc.Allies[1])
	}
	if rc.Enemies[0].Charges == nil || *rc.Enemies[0].Charges != 2 {
		t.Fatal("expected charges override")
	}
	if *tuning != *DefaultTuning() {
		t.Fatalf("expected default tuning, got %+v", tuning)
	}
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TuningFile, `
[pacing]
ability_delay = 4

[abilities]
parry_damage = 3
`)
	tuning, err := LoadTuning(filepath.Join(dir, TuningFile))
	if err != nil {
		t.Fatal(err)
	}
	if tuning.Pacing.AbilityDelay != 4 || tuning.Abilities.ParryDamage != 3 {
		t.Fatalf("overrides not applied: %+v", tuning)
	}
	if tuning.Pacing.RoundDelay != DefaultTuning().Pacing.RoundDelay {
		t.Fatalf("expected round delay default, got %d", tuning.Pacing.RoundDelay)
	}
}

func TestLoadTuningRejectsZeroParry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TuningFile, "[abilities]\nparry_damage = 0\n")
	if _, err := LoadTuning(filepath.Join(dir, TuningFile)); err == nil {
		t.Fatal("expected error for zero parry damage")
	}
}

func TestLoadRosterValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero health", "slots: 1\nallies:\n  - name: a\n    health: 0\n"},
		{"negative damage", "slots: 1\nallies:\n  - name: a\n    health: 1\n    damage: -1\n"},
		{"too many", "slots: 1\nenemies:\n  - {name: a, health: 1}\n  - {name: b, health: 1}\n"},
		{"negative range", "slots: 1\nallies:\n  - {name: a, health: 1, range: -1}\n"},
		{"negative charges", "slots: 1\nallies:\n  - {name: a, health: 1, charges: -1}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, RosterFile, tc.body)
			_, err := LoadRoster(filepath.Join(dir, RosterFile))
			if !errors.Is(err, ErrInvalidRoster) {
				t.Fatalf("expected ErrInvalidRoster, got %v", err)
			}
		})
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), RosterFile)); err == nil {
		t.Fatal("expected error for missing roster")
	}
}

func TestLoadRosterKeepsExplicitZeroRange(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RosterFile, "allies:\n  - {name: a, health: 1, range: 0}\n  - {name: b, health: 1}\n")
	rc, err := LoadRoster(filepath.Join(dir, RosterFile))
	if err != nil {
		t.Fatal(err)
	}
	if rc.Allies[0].Range == nil || rc.Allies[0].ReachOrDefault() != 0 {
		t.Fatalf("expected explicit range 0, got %v", rc.Allies[0].Range)
	}
	if rc.Allies[1].ReachOrDefault() != DefaultRange {
		t.Fatalf("expected default range for b, got %d", rc.Allies[1].ReachOrDefault())
	}
}

func TestLoadRosterInfersSlots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RosterFile, "allies:\n  - {name: a, health: 1}\n  - {name: b, health: 1}\nenemies:\n  - {name: c, health: 1}\n")
	rc, err := LoadRoster(filepath.Join(dir, RosterFile))
	if err != nil {
		t.Fatal(err)
	}
	if rc.Slots != 2 {
		t.Fatalf("expected 2 slots, got %d", rc.Slots)
	}
}

func TestParseSettingsFromEnv(t *testing.T) {
	t.Setenv("SLOTBATTLE_SEED", "99")
	t.Setenv("SLOTBATTLE_RUNS", "5")
	t.Setenv("SLOTBATTLE_WORKERS", "0")
	s, err := ParseSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != 99 || s.Runs != 5 || s.Workers != 1 || s.ConfigDir != "assets" {
		t.Fatalf("unexpected settings %+v", s)
	}

	t.Setenv("SLOTBATTLE_MAX_TICKS", "lots")
	if _, err := ParseSettings(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestClampWorkers(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 8: 8} {
		if got := ClampWorkers(in); got != want {
			t.Fatalf("ClampWorkers(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestIsConfigFile(t *testing.T) {
	for path, want := range map[string]bool{
		"roster.yaml": true, "x.YML": true, "tuning.toml": true, "notes.md": false, "roster.yaml~": false,
	} {
		if got := IsConfigFile(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}
