package combat

import (
	"testing"

	"slotbattle/internal/config"
	"slotbattle/internal/util"
)

// instantTuning removes every pacing delay so tests count only logic ticks.
func instantTuning() *config.Tuning {
	t := config.DefaultTuning()
	t.Pacing = config.PacingConfig{}
	return t
}

type fixture struct {
	book *AbilityBook
	f    *Battlefield
}

func newFixture(t *testing.T, tuning *config.Tuning, slots int) *fixture {
	t.Helper()
	book := NewAbilityBook(tuning)
	return &fixture{book: book, f: NewBattlefield(slots, book, util.New(7))}
}

func (fx *fixture) char(name string, hp, dmg, rng int, ability AbilityKind) *Character {
	c, err := fx.book.NewCharacter(config.CharacterDef{
		Name: name, Health: hp, Damage: dmg, Range: &rng, Ability: string(ability),
	})
	if err != nil {
		panic(err)
	}
	return c
}

func (fx *fixture) place(allies, enemies []*Character) {
	fx.f.Allies.Place(allies)
	fx.f.Enemies.Place(enemies)
}

// exhaust ticks h until done and returns the number of ticks spent.
func exhaust(t *testing.T, f *Battlefield, h *AbilityHandler, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		h.Activate(f)
		if h.Done() {
			return i
		}
	}
	t.Fatalf("handler not done after %d ticks", limit)
	return limit
}

func runTurn(t *testing.T, f *Battlefield, sl *Slot, limit int) {
	t.Helper()
	turn := NewBattleTurn(f, sl)
	for i := 0; i < limit; i++ {
		turn.Loop(f)
		if turn.Done() {
			return
		}
	}
	t.Fatalf("turn of %s not done after %d ticks", turn.Actor.Name, limit)
}

func slotNames(s Side) []string {
	out := make([]string, len(s))
	for i, sl := range s {
		if sl.Occupied() {
			out[i] = sl.Content.Name
		}
	}
	return out
}
