package combat

import (
	"go.uber.org/zap"
)

// AbilityKind names one ability variant.
type AbilityKind string

const (
	AbilityBasicAttack     AbilityKind = "basic_attack"
	AbilityVolley          AbilityKind = "volley"
	AbilityHeal            AbilityKind = "heal"
	AbilityRampage         AbilityKind = "rampage"
	AbilityReckless        AbilityKind = "reckless"
	AbilityDevour          AbilityKind = "devour"
	AbilityEnrage          AbilityKind = "enrage"
	AbilityParry           AbilityKind = "parry"
	AbilityCorpseExplosion AbilityKind = "corpse_explosion"
	AbilityAcidBurst       AbilityKind = "acid_burst"
	AbilityInspire         AbilityKind = "inspire"
	AbilityPotion          AbilityKind = "potion"
)

// effect is the closed set of per-variant behaviour. determineTargets must
// leave a.Targets empty when nothing is valid; activate runs only with at
// least one target.
type effect interface {
	determineTargets(a *Ability, f *Battlefield)
	activate(a *Ability, f *Battlefield)
	indicator(a *Ability) string
}

// Ability is one resolving instance. It moves from unresolved, through
// targeting and waiting, to done, one step per tick, and never goes back.
type Ability struct {
	Kind      AbilityKind
	Trigger   TriggerKind
	Caster    *Character
	Triggerer *Character
	Targets   []*Character

	delay       *Delay
	searched    bool
	highlighted bool
	done        bool
	effect      effect
}

func (a *Ability) Done() bool     { return a.done }
func (a *Ability) Searched() bool { return a.searched }

// TargetIndicator is the label shown on targets while the ability waits.
func (a *Ability) TargetIndicator() string { return a.effect.indicator(a) }

// Step advances the ability by one tick.
func (a *Ability) Step(f *Battlefield) {
	switch {
	case a.done:
		return
	case !a.searched:
		a.Targets = nil
		if a.casterCanAct(f) {
			a.effect.determineTargets(a, f)
		}
		if len(a.Targets) == 0 && a.Kind == AbilityBasicAttack {
			a.delay.Reset(f.Book.Tuning().Pacing.NoTargetDelay)
		}
		a.highlight(f)
		a.searched = true
	case !a.delay.Elapsed():
		a.delay.Tick()
	case len(a.Targets) == 0:
		a.finish()
	default:
		f.logger().Debug("ability activates",
			zap.String("ability", string(a.Kind)),
			zap.String("caster", a.Caster.Name),
			zap.Int("targets", len(a.Targets)),
			zap.Int("tick", f.Tick))
		a.effect.activate(a, f)
		a.finish()
	}
}

func (a *Ability) casterCanAct(f *Battlefield) bool {
	if f.SlotOf(a.Caster) == nil {
		return false
	}
	return a.Trigger == TriggerDeath || !a.Caster.IsDead()
}

func (a *Ability) highlight(f *Battlefield) {
	if len(a.Targets) == 0 {
		return
	}
	label := a.TargetIndicator()
	a.Caster.holdAttack()
	names := make([]string, len(a.Targets))
	for i, t := range a.Targets {
		t.holdDefend(label)
		names[i] = t.Name
	}
	a.highlighted = true
	f.emit(EventHighlight, map[string]any{
		"ability": string(a.Kind), "caster": a.Caster.Name,
		"targets": names, "indicator": label,
	})
}

func (a *Ability) finish() {
	if a.highlighted {
		a.Caster.releaseAttack()
		for _, t := range a.Targets {
			t.releaseDefend()
		}
	}
	a.done = true
}
