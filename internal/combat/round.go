package combat

import (
	"go.uber.org/zap"
)

type roundPhase int

const (
	roundOpening roundPhase = iota
	roundTriggers
	roundSettle
	roundTurns
	roundClosing
	roundDone
)

// BattleRound runs ROUND_START abilities, then one turn per living
// character in alternating order, then cleans up the dead.
type BattleRound struct {
	Number int

	order   []*Slot
	phase   roundPhase
	delay   *Delay
	start   *AbilityHandler
	turn    *BattleTurn
	removed []*Character
}

func NewBattleRound(f *Battlefield, number int) *BattleRound {
	r := &BattleRound{
		Number: number,
		order:  TurnOrder(f),
		delay:  NewDelay(f.Book.Tuning().Pacing.RoundDelay),
	}
	f.emit(EventRoundStart, map[string]any{"round": number, "turns": len(r.order)})
	f.logger().Info("round started", zap.Int("round", number), zap.Int("turns", len(r.order)))
	return r
}

// TurnOrder pairs slot i of the allies with slot i of the enemies, front
// to back, allies first. Empty slots and corpses are skipped.
func TurnOrder(f *Battlefield) []*Slot {
	n := max(len(f.Allies), len(f.Enemies))
	order := make([]*Slot, 0, 2*n)
	for i := 0; i < n; i++ {
		if i < len(f.Allies) && f.Allies[i].Living() {
			order = append(order, f.Allies[i])
		}
		if i < len(f.Enemies) && f.Enemies[i].Living() {
			order = append(order, f.Enemies[i])
		}
	}
	return order
}

func (r *BattleRound) Done() bool { return r.phase == roundDone }

// Remaining is the number of turns not yet started.
func (r *BattleRound) Remaining() int { return len(r.order) }

// Acting returns the character whose turn is running, or nil.
func (r *BattleRound) Acting() *Character {
	if r.turn == nil || r.turn.Done() {
		return nil
	}
	return r.turn.Actor
}

// Removed lists the characters cleared at round end.
func (r *BattleRound) Removed() []*Character { return r.removed }

func (r *BattleRound) Loop(f *Battlefield) {
	switch r.phase {
	case roundOpening:
		if !r.delay.Elapsed() {
			r.delay.Tick()
			return
		}
		r.start = FromTrigger(f, TriggerRoundStart)
		r.phase = roundTriggers
	case roundTriggers:
		if !r.start.Done() {
			r.start.Activate(f)
			return
		}
		r.delay.Reset(f.Book.Tuning().Pacing.RoundDelay)
		r.phase = roundSettle
	case roundSettle:
		if !r.delay.Elapsed() {
			r.delay.Tick()
			return
		}
		r.phase = roundTurns
	case roundTurns:
		r.loopTurns(f)
	case roundClosing:
		if !r.delay.Elapsed() {
			r.delay.Tick()
			return
		}
		r.cleanup(f)
		r.phase = roundDone
	}
}

func (r *BattleRound) loopTurns(f *Battlefield) {
	if r.turn != nil && !r.turn.Done() {
		r.turn.Loop(f)
		return
	}
	r.turn = nil
	for len(r.order) > 0 {
		sl := r.order[0]
		r.order = r.order[1:]
		// Killed since the order was built: skip without spending a tick.
		if !sl.Living() {
			continue
		}
		r.turn = NewBattleTurn(f, sl)
		f.emit(EventTurnStart, map[string]any{"round": r.Number, "id": sl.Content.Name})
		r.turn.Loop(f)
		return
	}
	r.delay.Reset(f.Book.Tuning().Pacing.RoundDelay)
	r.phase = roundClosing
}

// cleanup removes the dead and packs survivors toward the front.
func (r *BattleRound) cleanup(f *Battlefield) {
	r.removed = append(f.Allies.RemoveDead(), f.Enemies.RemoveDead()...)
	f.Allies.Compact()
	f.Enemies.Compact()
	names := make([]string, len(r.removed))
	for i, c := range r.removed {
		names[i] = c.Name
	}
	f.emit(EventCleanup, map[string]any{"round": r.Number, "removed": names})
	f.logger().Info("round finished", zap.Int("round", r.Number), zap.Strings("removed", names))
}
