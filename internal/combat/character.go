package combat

// Character is one combatant. Rosters own characters; slots only point at
// them.
type Character struct {
	Name      string
	Health    int
	MaxHealth int
	Damage    int
	Range     int
	Ability   AbilityKind
	Charges   int
	Note      string

	// Transient highlight state, set while an ability resolves.
	IsAttacking     bool
	IsDefending     bool
	IsActing        bool
	CombatIndicator string

	// Unfinished abilities highlighting c as caster or target.
	attackHolds, defendHolds int

	book  *AbilityBook
	queue []*Ability
}

func (c *Character) IsDead() bool       { return c.Health <= 0 }
func (c *Character) IsFullHealth() bool { return c.Health >= c.MaxHealth }

// DamageHealth removes up to amount health and raises DEFEND or DEATH on c.
// It returns the health actually lost. Dead characters ignore damage.
func (c *Character) DamageHealth(amount int, source *Character) int {
	if c.IsDead() {
		return 0
	}
	if amount < 0 {
		amount = 0
	}
	if amount > c.Health {
		amount = c.Health
	}
	c.Health -= amount
	if c.IsDead() {
		c.Raise(TriggerDeath, source)
	} else {
		c.Raise(TriggerDefend, source)
	}
	return amount
}

// RestoreHealth heals a living character, capped at MaxHealth.
func (c *Character) RestoreHealth(amount int) int {
	if c.IsDead() || amount <= 0 {
		return 0
	}
	if c.Health+amount > c.MaxHealth {
		amount = c.MaxHealth - c.Health
	}
	c.Health += amount
	return amount
}

// Revive restores full health and clears any battle leftovers.
func (c *Character) Revive() {
	c.Health = c.MaxHealth
	c.queue = nil
	c.clearFlags()
	c.IsActing = false
}

// Raise appends a new instance of c's bound ability to its reactive queue
// when that ability fires on kind.
func (c *Character) Raise(kind TriggerKind, triggerer *Character) {
	if c.book == nil || c.Ability == "" {
		return
	}
	if k, ok := c.book.TriggerOf(c.Ability); !ok || k != kind {
		return
	}
	ab, err := c.book.Instantiate(c.Ability, c, triggerer)
	if err != nil {
		return
	}
	c.queue = append(c.queue, ab)
}

// Enqueue pushes an already built ability onto c's reactive queue.
func (c *Character) Enqueue(ab *Ability) { c.queue = append(c.queue, ab) }

// Pending reports how many reactive abilities are waiting.
func (c *Character) Pending() int { return len(c.queue) }

func (c *Character) drain() []*Ability {
	q := c.queue
	c.queue = nil
	return q
}

func (c *Character) clearFlags() {
	c.IsAttacking = false
	c.IsDefending = false
	c.CombatIndicator = ""
	c.attackHolds, c.defendHolds = 0, 0
}

func (c *Character) holdAttack() {
	c.attackHolds++
	c.IsAttacking = true
}

func (c *Character) holdDefend(label string) {
	c.defendHolds++
	c.IsDefending = true
	c.CombatIndicator = label
}

// releaseAttack and releaseDefend drop one hold and clear the flag only
// when no other ability still highlights c.
func (c *Character) releaseAttack() {
	if c.attackHolds > 0 {
		c.attackHolds--
	}
	if c.attackHolds == 0 {
		c.IsAttacking = false
	}
}

func (c *Character) releaseDefend() {
	if c.defendHolds > 0 {
		c.defendHolds--
	}
	if c.defendHolds == 0 {
		c.IsDefending = false
		c.CombatIndicator = ""
	}
}
