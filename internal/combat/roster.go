package combat

import (
	"fmt"

	"slotbattle/internal/config"
)

// NewCharacter creates a full-health character from its definition.
func (b *AbilityBook) NewCharacter(def config.CharacterDef) (*Character, error) {
	kind, err := ParseAbilityKind(def.Ability)
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", def.Name, err)
	}
	c := &Character{
		Name:      def.Name,
		Health:    def.Health,
		MaxHealth: def.Health,
		Damage:    def.Damage,
		Range:     def.ReachOrDefault(),
		Ability:   kind,
		Note:      def.Note,
		book:      b,
	}
	if kind == AbilityPotion {
		c.Charges = b.tuning.Abilities.PotionCharges
	}
	if def.Charges != nil {
		c.Charges = *def.Charges
	}
	return c, nil
}

// NewRoster creates one side's characters in slot order.
func (b *AbilityBook) NewRoster(defs []config.CharacterDef) ([]*Character, error) {
	out := make([]*Character, 0, len(defs))
	for _, d := range defs {
		c, err := b.NewCharacter(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
