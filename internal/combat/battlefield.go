package combat

import (
	"math/rand"

	"go.uber.org/zap"
)

// Battlefield is the shared state every handler, turn and round of one
// combat works against.
type Battlefield struct {
	Allies  Side
	Enemies Side
	Book    *AbilityBook
	Rng     *rand.Rand
	Log     *zap.Logger
	Emit    func(Event)

	// Tick is advanced by CombatState.Loop.
	Tick int
}

// NewBattlefield lays out slots per side. It panics on a non-positive
// slot count.
func NewBattlefield(slots int, book *AbilityBook, rng *rand.Rand) *Battlefield {
	if slots <= 0 {
		panic("combat: battlefield needs at least one slot per side")
	}
	if book == nil {
		book = NewAbilityBook(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	allies, enemies := newSides(slots)
	return &Battlefield{
		Allies:  allies,
		Enemies: enemies,
		Book:    book,
		Rng:     rng,
		Log:     zap.NewNop(),
		Emit:    func(Event) {},
	}
}

// Sides returns c's own side and the opposing side. Both are nil when c is
// not on the field.
func (f *Battlefield) Sides(c *Character) (own, opp Side) {
	if f.Allies.SlotOf(c) != nil {
		return f.Allies, f.Enemies
	}
	if f.Enemies.SlotOf(c) != nil {
		return f.Enemies, f.Allies
	}
	return nil, nil
}

// SlotOf finds c on either side.
func (f *Battlefield) SlotOf(c *Character) *Slot {
	if sl := f.Allies.SlotOf(c); sl != nil {
		return sl
	}
	return f.Enemies.SlotOf(c)
}

func (f *Battlefield) emit(typ string, payload map[string]any) {
	if f.Emit == nil {
		return
	}
	f.Emit(Event{T: f.Tick, Type: typ, Payload: payload})
}

func (f *Battlefield) logger() *zap.Logger {
	if f.Log == nil {
		return zap.NewNop()
	}
	return f.Log
}

func (f *Battlefield) hit(a *Ability, t *Character, dealt int) {
	f.emit(EventHit, map[string]any{
		"ability": string(a.Kind), "caster": a.Caster.Name, "target": t.Name,
		"dmg": dealt, "hp": t.Health,
	})
	if t.IsDead() && dealt > 0 {
		f.emit(EventDeath, map[string]any{"id": t.Name, "killer": a.Caster.Name})
		f.logger().Debug("character died",
			zap.String("character", t.Name),
			zap.String("killer", a.Caster.Name),
			zap.String("ability", string(a.Kind)))
	}
}

func (f *Battlefield) healed(a *Ability, t *Character, amount int) {
	f.emit(EventHeal, map[string]any{
		"ability": string(a.Kind), "caster": a.Caster.Name, "target": t.Name,
		"amount": amount, "hp": t.Health,
	})
}

func (f *Battlefield) buffed(a *Ability, t *Character) {
	f.emit(EventBuff, map[string]any{
		"ability": string(a.Kind), "caster": a.Caster.Name, "target": t.Name,
		"damage": t.Damage, "max_hp": t.MaxHealth,
	})
}
