package combat

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"slotbattle/internal/config"
)

var ErrTickBudget = errors.New("combat did not conclude within the tick budget")

type SimResult struct {
	Outcome     Outcome             `json:"outcome"`
	Win         bool                `json:"win"`
	Ticks       int                 `json:"ticks"`
	Rounds      int                 `json:"rounds"`
	Survivors   map[string][]string `json:"survivors"`
	DamageBy    map[string]int      `json:"damage_by"`
	Activations map[string]int      `json:"activations"`
	Events      []Event             `json:"events,omitempty"`
	Meta        SimMeta             `json:"meta"`
}

type SimMeta struct {
	Seed    int64              `json:"seed"`
	Slots   int                `json:"slots"`
	Allies  []SimCharacterMeta `json:"allies"`
	Enemies []SimCharacterMeta `json:"enemies"`
}

type SimCharacterMeta struct {
	Name    string `json:"name"`
	Health  int    `json:"health"`
	Damage  int    `json:"damage"`
	Range   int    `json:"range"`
	Ability string `json:"ability,omitempty"`
	Note    string `json:"note,omitempty"`
}

// RunOptions control one simulated combat.
type RunOptions struct {
	Seed     int64
	MaxTicks int
	Record   bool
	Log      *zap.Logger
}

// NewCombat builds a ready-to-run combat from loaded configuration.
func NewCombat(rc *config.RosterConfig, t *config.Tuning, rng *rand.Rand) (*CombatState, error) {
	book := NewAbilityBook(t)
	allies, err := book.NewRoster(rc.Allies)
	if err != nil {
		return nil, fmt.Errorf("allies: %w", err)
	}
	enemies, err := book.NewRoster(rc.Enemies)
	if err != nil {
		return nil, fmt.Errorf("enemies: %w", err)
	}
	f := NewBattlefield(rc.Slots, book, rng)
	return NewCombatState(f, allies, enemies), nil
}

// RunSingle ticks s until it concludes or opts.MaxTicks is exhausted.
func RunSingle(s *CombatState, opts RunOptions) (SimResult, error) {
	f := s.Field
	if opts.Log != nil {
		f.Log = opts.Log
	}
	res := SimResult{
		DamageBy:    map[string]int{},
		Activations: map[string]int{},
		Meta:        SimMeta{Seed: opts.Seed, Slots: len(f.Allies)},
	}
	res.Meta.Allies = characterMeta(s.Allies)
	res.Meta.Enemies = characterMeta(s.Enemies)

	prev := f.Emit
	f.Emit = func(ev Event) {
		switch ev.Type {
		case EventHit:
			if caster, ok := ev.Payload["caster"].(string); ok {
				dmg, _ := ev.Payload["dmg"].(int)
				res.DamageBy[caster] += dmg
			}
		case EventHighlight:
			if kind, ok := ev.Payload["ability"].(string); ok {
				res.Activations[kind]++
			}
		}
		if opts.Record {
			res.Events = append(res.Events, ev)
		}
		if prev != nil {
			prev(ev)
		}
	}
	defer func() { f.Emit = prev }()

	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = 200000
	}
	for !s.IsCombatConcluded() {
		if f.Tick >= maxTicks {
			return res, fmt.Errorf("%w: %d ticks, round %d", ErrTickBudget, f.Tick, s.Rounds())
		}
		s.Loop()
	}

	res.Outcome = s.Outcome()
	res.Win = res.Outcome == OutcomeVictory
	res.Ticks = f.Tick
	res.Rounds = s.Rounds()
	res.Survivors = s.Survivors()
	return res, nil
}

func characterMeta(cs []*Character) []SimCharacterMeta {
	out := make([]SimCharacterMeta, len(cs))
	for i, c := range cs {
		out[i] = SimCharacterMeta{
			Name: c.Name, Health: c.MaxHealth, Damage: c.Damage,
			Range: c.Range, Ability: string(c.Ability), Note: c.Note,
		}
	}
	return out
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
