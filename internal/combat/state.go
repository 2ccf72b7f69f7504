package combat

import (
	"go.uber.org/zap"
)

// CombatState drives a whole fight: COMBAT_START abilities once, then
// rounds until a side is wiped out.
type CombatState struct {
	Field *Battlefield
	// Allies and Enemies own the characters; slots only point at them.
	Allies  []*Character
	Enemies []*Character

	rounds    int
	started   bool
	start     *AbilityHandler
	round     *BattleRound
	concluded bool
	outcome   Outcome
	survivors map[string][]string
}

// NewCombatState places both rosters front to back.
func NewCombatState(f *Battlefield, allies, enemies []*Character) *CombatState {
	f.Allies.Place(allies)
	f.Enemies.Place(enemies)
	return &CombatState{Field: f, Allies: allies, Enemies: enemies}
}

func (s *CombatState) IsCombatConcluded() bool { return s.concluded }
func (s *CombatState) Outcome() Outcome         { return s.outcome }
func (s *CombatState) Rounds() int              { return s.rounds }

// Round returns the running round, or nil between rounds.
func (s *CombatState) Round() *BattleRound { return s.round }

// Survivors lists living character names per side ("allies", "enemies")
// as they stood when the combat concluded.
func (s *CombatState) Survivors() map[string][]string { return s.survivors }

// Loop advances the combat by one tick. It is a no-op once concluded.
func (s *CombatState) Loop() {
	if s.concluded {
		return
	}
	f := s.Field
	f.Tick++

	if !s.started {
		s.started = true
		s.start = FromTrigger(f, TriggerCombatStart)
		f.emit(EventCombatStart, map[string]any{
			"allies": len(f.Allies.Living()), "enemies": len(f.Enemies.Living()),
		})
		f.logger().Info("combat started",
			zap.Int("allies", len(f.Allies.Living())),
			zap.Int("enemies", len(f.Enemies.Living())))
	}
	if !s.start.Done() {
		s.start.Activate(f)
		return
	}

	if s.round == nil {
		if s.checkConclusion() {
			return
		}
		s.rounds++
		s.round = NewBattleRound(f, s.rounds)
	}
	s.round.Loop(f)
	if s.round.Done() {
		s.round = nil
		s.checkConclusion()
	}
}

func (s *CombatState) checkConclusion() bool {
	f := s.Field
	alliesUp, enemiesUp := f.Allies.AnyLiving(), f.Enemies.AnyLiving()
	switch {
	case alliesUp && enemiesUp:
		return false
	case alliesUp:
		s.outcome = OutcomeVictory
	case enemiesUp:
		s.outcome = OutcomeDefeat
	default:
		s.outcome = OutcomeDraw
	}
	s.conclude()
	return true
}

func (s *CombatState) conclude() {
	f := s.Field
	s.survivors = map[string][]string{
		"allies":  names(f.Allies.Living()),
		"enemies": names(f.Enemies.Living()),
	}
	// The roster heals between fights; this is not an in-battle revive.
	for _, c := range s.Allies {
		c.Revive()
	}
	s.concluded = true
	f.emit(EventCombatEnd, map[string]any{"outcome": string(s.outcome), "rounds": s.rounds})
	f.logger().Info("combat concluded",
		zap.String("outcome", string(s.outcome)),
		zap.Int("rounds", s.rounds),
		zap.Int("tick", f.Tick))
}

func names(cs []*Character) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
