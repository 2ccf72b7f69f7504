package combat

// TriggerKind says when an ability may fire.
type TriggerKind int

const (
	TriggerCombatStart TriggerKind = iota
	TriggerRoundStart
	TriggerTurnStart
	TriggerAttack
	TriggerDefend
	TriggerDeath
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerCombatStart:
		return "COMBAT_START"
	case TriggerRoundStart:
		return "ROUND_START"
	case TriggerTurnStart:
		return "TURN_START"
	case TriggerAttack:
		return "ATTACK"
	case TriggerDefend:
		return "DEFEND"
	case TriggerDeath:
		return "DEATH"
	}
	return "UNKNOWN"
}
