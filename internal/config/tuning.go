package config

import "fmt"

// Tuning holds the engine's pacing and ability constants.
type Tuning struct {
	Pacing    PacingConfig    `toml:"pacing"`
	Abilities AbilitiesConfig `toml:"abilities"`
}

// PacingConfig values are in simulation ticks.
type PacingConfig struct {
	AbilityDelay  int `toml:"ability_delay"`
	NoTargetDelay int `toml:"no_target_delay"`
	TurnEndDelay  int `toml:"turn_end_delay"`
	RoundDelay    int `toml:"round_delay"`
}

type AbilitiesConfig struct {
	VolleyHits            int `toml:"volley_hits"`
	VolleyDamage          int `toml:"volley_damage"`
	RampageDamage         int `toml:"rampage_damage"`
	RecklessDamage        int `toml:"reckless_damage"`
	RecklessSelfDamage    int `toml:"reckless_self_damage"`
	HealAmount            int `toml:"heal_amount"`
	CorpseExplosionDamage int `toml:"corpse_explosion_damage"`
	DevourGrowth          int `toml:"devour_growth"`
	EnrageDamage          int `toml:"enrage_damage"`
	ParryDamage           int `toml:"parry_damage"`
	PotionThreshold       int `toml:"potion_threshold"`
	PotionCharges         int `toml:"potion_charges"`
	AcidBurstDamage       int `toml:"acid_burst_damage"`
}

func DefaultTuning() *Tuning {
	return &Tuning{
		Pacing: PacingConfig{
			AbilityDelay:  20,
			NoTargetDelay: 5,
			TurnEndDelay:  10,
			RoundDelay:    15,
		},
		Abilities: AbilitiesConfig{
			VolleyHits:            2,
			VolleyDamage:          1,
			RampageDamage:         1,
			RecklessDamage:        2,
			RecklessSelfDamage:    1,
			HealAmount:            2,
			CorpseExplosionDamage: 3,
			DevourGrowth:          1,
			EnrageDamage:          1,
			ParryDamage:           1,
			PotionThreshold:       3,
			PotionCharges:         1,
			AcidBurstDamage:       2,
		},
	}
}

// Validate rejects tunings the engine cannot run with.
func (t *Tuning) Validate() error {
	p := t.Pacing
	if p.AbilityDelay < 0 || p.NoTargetDelay < 0 || p.TurnEndDelay < 0 || p.RoundDelay < 0 {
		return fmt.Errorf("pacing delays must not be negative")
	}
	a := t.Abilities
	// Parry answers a hit with a hit, so zero damage would never end.
	if a.ParryDamage < 1 {
		return fmt.Errorf("parry_damage must be at least 1, got %d", a.ParryDamage)
	}
	if a.VolleyHits < 0 || a.PotionCharges < 0 {
		return fmt.Errorf("volley_hits and potion_charges must not be negative")
	}
	return nil
}
