package combat

import (
	"fmt"
)

// basicAttack scans the opposing side back-to-front and strikes the first
// living occupant in range, so the farthest reachable opponent is preferred.
type basicAttack struct{}

func (basicAttack) determineTargets(a *Ability, f *Battlefield) {
	own, opp := f.Sides(a.Caster)
	from := own.SlotOf(a.Caster)
	for i := len(opp) - 1; i >= 0; i-- {
		sl := opp[i]
		if sl.Living() && Distance(from, sl) <= a.Caster.Range {
			a.Targets = []*Character{sl.Content}
			return
		}
	}
}

func (basicAttack) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	dealt := t.DamageHealth(a.Caster.Damage, a.Caster)
	a.Caster.Raise(TriggerAttack, t)
	f.hit(a, t, dealt)
}

func (basicAttack) indicator(a *Ability) string { return fmt.Sprintf("-%d", a.Caster.Damage) }

// volley picks opponents independently, so one may be hit more than once.
type volley struct{ hits, amount int }

func (v volley) determineTargets(a *Ability, f *Battlefield) {
	_, opp := f.Sides(a.Caster)
	living := opp.Living()
	if len(living) == 0 {
		return
	}
	for i := 0; i < v.hits; i++ {
		a.Targets = append(a.Targets, living[f.Rng.Intn(len(living))])
	}
}

func (v volley) activate(a *Ability, f *Battlefield) {
	for _, t := range a.Targets {
		f.hit(a, t, t.DamageHealth(v.amount, a.Caster))
	}
}

func (v volley) indicator(*Ability) string { return fmt.Sprintf("-%d", v.amount) }

// heal restores the most hurt living friend; ties go to the front-most.
type heal struct{ amount int }

func (heal) determineTargets(a *Ability, f *Battlefield) {
	own, _ := f.Sides(a.Caster)
	var best *Character
	for _, c := range own.Living() {
		if c.IsFullHealth() {
			continue
		}
		if best == nil || c.Health < best.Health {
			best = c
		}
	}
	if best != nil {
		a.Targets = []*Character{best}
	}
}

func (h heal) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	f.healed(a, t, t.RestoreHealth(h.amount))
}

func (h heal) indicator(*Ability) string { return fmt.Sprintf("+%d", h.amount) }

// selfBuff covers the self-targeting stat changes: rampage, reckless,
// devour and enrage.
type selfBuff struct {
	damage     int
	selfDamage int
	growth     int
}

func (selfBuff) determineTargets(a *Ability, _ *Battlefield) {
	a.Targets = []*Character{a.Caster}
}

func (b selfBuff) activate(a *Ability, f *Battlefield) {
	c := a.Caster
	c.Damage += b.damage
	if b.growth > 0 {
		c.MaxHealth += b.growth
		c.RestoreHealth(b.growth)
	}
	f.buffed(a, c)
	if b.selfDamage > 0 {
		f.hit(a, c, c.DamageHealth(b.selfDamage, c))
	}
}

func (b selfBuff) indicator(*Ability) string {
	switch {
	case b.growth > 0:
		return fmt.Sprintf("+%d hp", b.growth)
	case b.selfDamage > 0:
		return fmt.Sprintf("+%d dmg -%d hp", b.damage, b.selfDamage)
	}
	return fmt.Sprintf("+%d dmg", b.damage)
}

// parry strikes back at whoever raised it.
type parry struct{ amount int }

func (parry) determineTargets(a *Ability, f *Battlefield) {
	t := a.Triggerer
	if t == nil || t == a.Caster || t.IsDead() || f.SlotOf(t) == nil {
		return
	}
	a.Targets = []*Character{t}
}

func (p parry) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	f.hit(a, t, t.DamageHealth(p.amount, a.Caster))
}

func (p parry) indicator(*Ability) string { return fmt.Sprintf("-%d", p.amount) }

// corpseExplosion consumes a corpse to damage the first living opponent.
// Friendly corpses are used before opposing ones. The corpse leaves its
// slot at once rather than waiting for round-end cleanup.
type corpseExplosion struct {
	amount int
	corpse *Slot
}

func (e *corpseExplosion) determineTargets(a *Ability, f *Battlefield) {
	own, opp := f.Sides(a.Caster)
	corpse := firstCorpse(own)
	if corpse == nil {
		corpse = firstCorpse(opp)
	}
	living := opp.Living()
	if corpse == nil || len(living) == 0 {
		return
	}
	e.corpse = corpse
	a.Targets = []*Character{living[0]}
}

func firstCorpse(s Side) *Slot {
	for _, sl := range s {
		if sl.Occupied() && sl.Content.IsDead() {
			return sl
		}
	}
	return nil
}

func (e *corpseExplosion) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	f.hit(a, t, t.DamageHealth(e.amount, a.Caster))
	if e.corpse.Occupied() && e.corpse.Content.IsDead() {
		f.emit(EventConsume, map[string]any{
			"caster": a.Caster.Name, "corpse": e.corpse.Content.Name,
		})
		e.corpse.Content = nil
	}
}

func (e *corpseExplosion) indicator(*Ability) string { return fmt.Sprintf("-%d", e.amount) }

// acidBurst fires from a dying character at the first living opponent.
type acidBurst struct{ amount int }

func (acidBurst) determineTargets(a *Ability, f *Battlefield) {
	_, opp := f.Sides(a.Caster)
	if living := opp.Living(); len(living) > 0 {
		a.Targets = []*Character{living[0]}
	}
}

func (b acidBurst) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	f.hit(a, t, t.DamageHealth(b.amount, a.Caster))
}

func (b acidBurst) indicator(*Ability) string { return fmt.Sprintf("-%d", b.amount) }

// inspire makes the front friend attack right away. The attack is queued
// on that friend and runs as a triggered ability.
type inspire struct{}

func (inspire) determineTargets(a *Ability, f *Battlefield) {
	own, _ := f.Sides(a.Caster)
	if len(own) == 0 {
		return
	}
	front := own[0]
	if front.Living() && front.Content != a.Caster {
		a.Targets = []*Character{front.Content}
	}
}

func (inspire) activate(a *Ability, f *Battlefield) {
	t := a.Targets[0]
	t.Enqueue(f.Book.BasicAttack(t))
	f.buffed(a, t)
}

func (inspire) indicator(*Ability) string { return "!" }

// potion fully heals a low caster while charges remain.
type potion struct{ threshold int }

func (p potion) determineTargets(a *Ability, _ *Battlefield) {
	c := a.Caster
	if c.Charges > 0 && c.Health < p.threshold {
		a.Targets = []*Character{c}
	}
}

func (potion) activate(a *Ability, f *Battlefield) {
	c := a.Caster
	c.Charges--
	f.healed(a, c, c.RestoreHealth(c.MaxHealth-c.Health))
}

func (potion) indicator(a *Ability) string {
	return fmt.Sprintf("+%d", a.Caster.MaxHealth-a.Caster.Health)
}
