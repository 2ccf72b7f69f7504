package combat

import (
	"errors"
	"fmt"

	"slotbattle/internal/config"
)

var ErrUnknownAbility = errors.New("unknown ability")

// triggers is the fixed trigger kind of every ability a character can
// carry. Basic attacks are not bindable.
var triggers = map[AbilityKind]TriggerKind{
	AbilityVolley:          TriggerCombatStart,
	AbilityRampage:         TriggerRoundStart,
	AbilityReckless:        TriggerTurnStart,
	AbilityHeal:            TriggerTurnStart,
	AbilityCorpseExplosion: TriggerTurnStart,
	AbilityInspire:         TriggerTurnStart,
	AbilityDevour:          TriggerAttack,
	AbilityEnrage:          TriggerDefend,
	AbilityParry:           TriggerDefend,
	AbilityPotion:          TriggerDefend,
	AbilityAcidBurst:       TriggerDeath,
}

// ParseAbilityKind maps a roster ability name to its kind. The empty name
// means no ability.
func ParseAbilityKind(name string) (AbilityKind, error) {
	if name == "" {
		return "", nil
	}
	k := AbilityKind(name)
	if _, ok := triggers[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAbility, name)
	}
	return k, nil
}

// AbilityBook builds ability instances and characters from one tuning.
type AbilityBook struct {
	tuning *config.Tuning
}

func NewAbilityBook(t *config.Tuning) *AbilityBook {
	if t == nil {
		t = config.DefaultTuning()
	}
	return &AbilityBook{tuning: t}
}

func (b *AbilityBook) Tuning() *config.Tuning { return b.tuning }

// TriggerOf reports when kind fires.
func (b *AbilityBook) TriggerOf(kind AbilityKind) (TriggerKind, bool) {
	k, ok := triggers[kind]
	return k, ok
}

// Instantiate builds a fresh, unresolved instance of kind cast by caster.
// triggerer is only meaningful for DEFEND abilities.
func (b *AbilityBook) Instantiate(kind AbilityKind, caster, triggerer *Character) (*Ability, error) {
	trig, ok := triggers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAbility, kind)
	}
	am := b.tuning.Abilities
	var eff effect
	switch kind {
	case AbilityVolley:
		eff = volley{hits: am.VolleyHits, amount: am.VolleyDamage}
	case AbilityHeal:
		eff = heal{amount: am.HealAmount}
	case AbilityRampage:
		eff = selfBuff{damage: am.RampageDamage}
	case AbilityReckless:
		eff = selfBuff{damage: am.RecklessDamage, selfDamage: am.RecklessSelfDamage}
	case AbilityDevour:
		eff = selfBuff{growth: am.DevourGrowth}
	case AbilityEnrage:
		eff = selfBuff{damage: am.EnrageDamage}
	case AbilityParry:
		eff = parry{amount: am.ParryDamage}
	case AbilityCorpseExplosion:
		eff = &corpseExplosion{amount: am.CorpseExplosionDamage}
	case AbilityAcidBurst:
		eff = acidBurst{amount: am.AcidBurstDamage}
	case AbilityInspire:
		eff = inspire{}
	case AbilityPotion:
		eff = potion{threshold: am.PotionThreshold}
	}
	return &Ability{
		Kind:      kind,
		Trigger:   trig,
		Caster:    caster,
		Triggerer: triggerer,
		delay:     NewDelay(b.tuning.Pacing.AbilityDelay),
		effect:    eff,
	}, nil
}

// BasicAttack builds the attack every turn ends with.
func (b *AbilityBook) BasicAttack(caster *Character) *Ability {
	return &Ability{
		Kind:    AbilityBasicAttack,
		Trigger: TriggerTurnStart,
		Caster:  caster,
		delay:   NewDelay(b.tuning.Pacing.AbilityDelay),
		effect:  basicAttack{},
	}
}
