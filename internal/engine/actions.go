package engine

import "errors"

// ActionKind is the category of a submitted action. Attack is the only
// kind with full in-engine mechanics; switch, item and escape are
// acknowledged and delegated to ruleset collaborators.
type ActionKind string

const (
	ActionAttack ActionKind = "attack"
	ActionSwitch ActionKind = "switch"
	ActionItem   ActionKind = "item"
	ActionEscape ActionKind = "escape"
)

// KnownActionKind reports whether k is a supported action kind.
func KnownActionKind(k ActionKind) bool {
	switch k {
	case ActionAttack, ActionSwitch, ActionItem, ActionEscape:
		return true
	}
	return false
}

// MoveSpec is the metadata an attack needs: elemental type, base damage
// dice count and whether the move uses the special (Mind/Spirit) track.
type MoveSpec struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	DamageDice int    `json:"damage_dice"`
	Special    bool   `json:"special"`
}

// ActionRequest is one submitted action against the battle state.
type ActionRequest struct {
	ActorID   string
	Kind      ActionKind
	TargetIDs []string
	Move      MoveSpec
}

// Outcome classifies one per-target result. Misses and ineffective hits
// are ordinary outcomes, never errors.
type Outcome string

const (
	OutcomeHit          Outcome = "hit"
	OutcomeMiss         Outcome = "miss"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeNoVigorPool  Outcome = "no_vigor_pool"
	OutcomeAcknowledged Outcome = "acknowledged"
)

// ActionResult is the structured outcome of an action against a single
// target (or of the action itself for switch/item/escape).
type ActionResult struct {
	TargetID      string  `json:"target_id"`
	Outcome       Outcome `json:"outcome"`
	Roll          int     `json:"roll"`
	Critical      bool    `json:"critical"`
	Effectiveness float64 `json:"effectiveness"`
	Damage        int     `json:"damage"`
	Defeated      bool    `json:"defeated"`
	Detail        string  `json:"detail"`
}

// Resolver errors. The service layer maps these onto its own taxonomy.
var (
	ErrActorNotFound     = errors.New("actor not found")
	ErrActorDefeated     = errors.New("actor is defeated")
	ErrInvalidActionKind = errors.New("invalid action kind")
	ErrMissingMove       = errors.New("attack requires move metadata")
)
