package combat

// BattleTurn is one character acting: its TURN_START ability, its basic
// attack, then a short cosmetic pause.
type BattleTurn struct {
	Slot  *Slot
	Actor *Character

	handler *AbilityHandler
	post    *Delay
}

// NewBattleTurn panics when slot is empty.
func NewBattleTurn(f *Battlefield, slot *Slot) *BattleTurn {
	if !slot.Occupied() {
		panic("combat: turn started on an empty slot")
	}
	actor := slot.Content
	actor.IsActing = true
	return &BattleTurn{
		Slot:    slot,
		Actor:   actor,
		handler: TurnAbilities(f, actor),
		post:    NewDelay(f.Book.Tuning().Pacing.TurnEndDelay),
	}
}

func (t *BattleTurn) Handler() *AbilityHandler { return t.handler }

func (t *BattleTurn) Done() bool { return t.handler.Done() && t.post.Elapsed() }

func (t *BattleTurn) Loop(f *Battlefield) {
	if !t.handler.Done() {
		t.handler.Activate(f)
	} else {
		t.post.Tick()
	}
	if t.Done() {
		t.Actor.IsActing = false
	}
}
