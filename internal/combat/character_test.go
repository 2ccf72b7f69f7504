package combat

import "testing"

func TestCharacterHealthStaysInBounds(t *testing.T) {
	type op struct {
		damage bool
		n      int
	}
	cases := []struct {
		name string
		ops  []op
		want int
	}{
		{"overkill", []op{{true, 50}}, 0},
		{"overheal", []op{{true, 3}, {false, 40}}, 10},
		{"negative damage", []op{{true, -5}}, 10},
		{"heal after death", []op{{true, 10}, {false, 5}}, 0},
		{"mixed", []op{{true, 4}, {false, 1}, {true, 2}, {false, 2}}, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Character{Name: "c", Health: 10, MaxHealth: 10}
			for _, o := range tc.ops {
				if o.damage {
					c.DamageHealth(o.n, nil)
				} else {
					c.RestoreHealth(o.n)
				}
				if c.Health < 0 || c.Health > c.MaxHealth {
					t.Fatalf("health %d out of [0,%d]", c.Health, c.MaxHealth)
				}
			}
			if c.Health != tc.want {
				t.Fatalf("expected health %d, got %d", tc.want, c.Health)
			}
		})
	}
}

func TestDamageRaisesMatchingReactiveAbility(t *testing.T) {
	fx := newFixture(t, instantTuning(), 2)
	attacker := fx.char("attacker", 10, 1, 1, "")
	parrier := fx.char("parrier", 10, 1, 1, AbilityParry)
	burster := fx.char("burster", 2, 1, 1, AbilityAcidBurst)
	plain := fx.char("plain", 10, 1, 1, "")

	parrier.DamageHealth(1, attacker)
	if parrier.Pending() != 1 {
		t.Fatalf("expected parry queued, got %d", parrier.Pending())
	}
	q := parrier.drain()
	if q[0].Kind != AbilityParry || q[0].Triggerer != attacker || q[0].Trigger != TriggerDefend {
		t.Fatalf("unexpected queued ability %+v", q[0])
	}

	// Survived damage is not a death, so no acid burst yet.
	burster.DamageHealth(1, attacker)
	if burster.Pending() != 0 {
		t.Fatalf("expected nothing queued on survival, got %d", burster.Pending())
	}
	burster.DamageHealth(1, attacker)
	if burster.Pending() != 1 {
		t.Fatalf("expected acid burst queued on death, got %d", burster.Pending())
	}
	// Damage to the dead is ignored entirely.
	if got := burster.DamageHealth(3, attacker); got != 0 || burster.Pending() != 1 {
		t.Fatalf("expected dead character to ignore damage, dealt %d pending %d", got, burster.Pending())
	}

	plain.DamageHealth(1, attacker)
	if plain.Pending() != 0 {
		t.Fatalf("expected no queue for character without ability")
	}
}

func TestReviveRestoresAndClears(t *testing.T) {
	fx := newFixture(t, instantTuning(), 1)
	c := fx.char("c", 5, 1, 1, AbilityEnrage)
	c.DamageHealth(5, nil)
	c.IsAttacking, c.IsActing, c.CombatIndicator = true, true, "-1"
	c.Revive()
	if c.IsDead() || !c.IsFullHealth() {
		t.Fatalf("expected full health after revive, got %d/%d", c.Health, c.MaxHealth)
	}
	if c.IsAttacking || c.IsActing || c.CombatIndicator != "" || c.Pending() != 0 {
		t.Fatalf("expected transient state cleared, got %+v", c)
	}
}
