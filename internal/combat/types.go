package combat

// Event is a render-facing record of something the engine did. T is the
// simulation tick it happened on.
type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventCombatStart = "CombatStart"
	EventRoundStart  = "RoundStart"
	EventTurnStart   = "TurnStart"
	EventHighlight   = "Highlight"
	EventHit         = "Hit"
	EventHeal        = "Heal"
	EventBuff        = "Buff"
	EventDeath       = "Death"
	EventConsume     = "Consume"
	EventCleanup     = "Cleanup"
	EventCombatEnd   = "CombatEnd"
)

// Outcome is the result of a concluded combat, seen from the ally side.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "VICTORY"
	OutcomeDefeat  Outcome = "DEFEAT"
	OutcomeDraw    Outcome = "DRAW"
)
