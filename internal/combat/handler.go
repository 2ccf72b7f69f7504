package combat

// AbilityHandler runs an ordered list of planned abilities strictly one
// after another, plus whatever reactive abilities they raise. Reactive
// abilities advance together, one step each per tick, and all of them
// settle before the next planned ability starts.
type AbilityHandler struct {
	planned   []*Ability
	triggered []*Ability
	current   int
	done      bool
}

// NewAbilityHandler wraps planned. A handler with nothing planned is done
// from the start.
func NewAbilityHandler(planned []*Ability) *AbilityHandler {
	return &AbilityHandler{planned: planned, done: len(planned) == 0}
}

// FromTrigger plans one instance for every living character whose ability
// fires on kind, allies before enemies, front to back.
func FromTrigger(f *Battlefield, kind TriggerKind) *AbilityHandler {
	var planned []*Ability
	for _, side := range []Side{f.Allies, f.Enemies} {
		for _, c := range side.Living() {
			if c.Ability == "" {
				continue
			}
			if k, ok := f.Book.TriggerOf(c.Ability); !ok || k != kind {
				continue
			}
			ab, err := f.Book.Instantiate(c.Ability, c, nil)
			if err != nil {
				continue
			}
			planned = append(planned, ab)
		}
	}
	return NewAbilityHandler(planned)
}

// TurnAbilities plans the caster's TURN_START ability, if any, followed
// by its basic attack.
func TurnAbilities(f *Battlefield, caster *Character) *AbilityHandler {
	var planned []*Ability
	if k, ok := f.Book.TriggerOf(caster.Ability); ok && k == TriggerTurnStart {
		if ab, err := f.Book.Instantiate(caster.Ability, caster, nil); err == nil {
			planned = append(planned, ab)
		}
	}
	planned = append(planned, f.Book.BasicAttack(caster))
	return NewAbilityHandler(planned)
}

func (h *AbilityHandler) Done() bool { return h.done }

// Planned and Triggered expose the handler's lists for inspection.
func (h *AbilityHandler) Planned() []*Ability   { return h.planned }
func (h *AbilityHandler) Triggered() []*Ability { return h.triggered }

// Activate advances the handler by one tick. Calling it on a finished
// handler is a programming error.
func (h *AbilityHandler) Activate(f *Battlefield) {
	if h.done {
		panic("combat: Activate on a finished ability handler")
	}
	h.drain(f)

	if cur := h.planned[h.current]; !cur.Done() {
		cur.Step(f)
		return
	}

	pending := false
	for _, ab := range h.triggered {
		if !ab.Done() {
			ab.Step(f)
			pending = true
		}
	}
	if pending {
		return
	}

	h.current++
	if h.current >= len(h.planned) {
		h.done = true
	}
}

// drain moves every occupant's reactive queue into the triggered list.
// Dead occupants are drained too so their DEATH abilities still run.
func (h *AbilityHandler) drain(f *Battlefield) {
	for _, side := range []Side{f.Allies, f.Enemies} {
		for _, sl := range side {
			if sl.Occupied() {
				h.triggered = append(h.triggered, sl.Content.drain()...)
			}
		}
	}
}
