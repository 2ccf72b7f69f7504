package combat

import (
	"testing"
)

func runCombat(t *testing.T, s *CombatState, limit int) {
	t.Helper()
	for i := 0; i < limit && !s.IsCombatConcluded(); i++ {
		s.Loop()
	}
	if !s.IsCombatConcluded() {
		t.Fatalf("combat not concluded after %d ticks", limit)
	}
}

func TestCombatVictoryRevivesAllies(t *testing.T) {
	fx := newFixture(t, instantTuning(), 3)
	tank := fx.char("tank", 12, 2, 1, "")
	fragile := fx.char("fragile", 1, 1, 3, "")
	boss := fx.char("boss", 6, 1, 3, "")
	s := NewCombatState(fx.f, []*Character{tank, fragile}, []*Character{boss})

	runCombat(t, s, 10000)

	if s.Outcome() != OutcomeVictory {
		t.Fatalf("expected victory, got %s", s.Outcome())
	}
	if !fragile.IsFullHealth() || !tank.IsFullHealth() {
		t.Fatalf("expected allies revived, tank %d fragile %d", tank.Health, fragile.Health)
	}
	if boss.Health != 0 {
		t.Fatalf("enemies are not revived, boss at %d", boss.Health)
	}
	if len(s.Survivors()["enemies"]) != 0 {
		t.Fatalf("unexpected enemy survivors %v", s.Survivors()["enemies"])
	}
	if s.Rounds() < 1 {
		t.Fatal("expected at least one round")
	}
}

func TestCombatStartCanEndTheFight(t *testing.T) {
	tuning := instantTuning()
	tuning.Abilities.VolleyDamage = 5
	fx := newFixture(t, tuning, 1)
	archer := fx.char("archer", 5, 1, 1, AbilityVolley)
	weakling := fx.char("weakling", 3, 1, 1, "")
	s := NewCombatState(fx.f, []*Character{archer}, []*Character{weakling})

	runCombat(t, s, 100)

	if s.Outcome() != OutcomeVictory || s.Rounds() != 0 {
		t.Fatalf("expected victory before any round, got %s after %d rounds", s.Outcome(), s.Rounds())
	}
}

func TestCombatDefeatAndLoopAfterConclusion(t *testing.T) {
	fx := newFixture(t, instantTuning(), 1)
	hero := fx.char("hero", 2, 0, 1, "")
	ogre := fx.char("ogre", 10, 5, 1, "")
	s := NewCombatState(fx.f, []*Character{hero}, []*Character{ogre})

	runCombat(t, s, 1000)
	if s.Outcome() != OutcomeDefeat {
		t.Fatalf("expected defeat, got %s", s.Outcome())
	}
	// Allies heal between fights even after a loss.
	if !hero.IsFullHealth() {
		t.Fatalf("expected hero revived, got %d", hero.Health)
	}
	tick := fx.f.Tick
	s.Loop()
	if fx.f.Tick != tick {
		t.Fatal("Loop advanced a concluded combat")
	}
}

func TestCombatDrawWhenBothSidesFall(t *testing.T) {
	tuning := instantTuning()
	tuning.Abilities.AcidBurstDamage = 10
	fx := newFixture(t, tuning, 1)
	hero := fx.char("hero", 5, 5, 1, "")
	slime := fx.char("slime", 5, 0, 1, AbilityAcidBurst)
	s := NewCombatState(fx.f, []*Character{hero}, []*Character{slime})

	runCombat(t, s, 1000)
	if s.Outcome() != OutcomeDraw {
		t.Fatalf("expected draw, got %s", s.Outcome())
	}
}
