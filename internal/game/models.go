package game

import (
	"encoding/json"
	"errors"
	"time"
)

// BattleKind is a string alias classifying the encounter. Using a
// dedicated type instead of plain string makes code safer and
// self-documenting.
type BattleKind string

const (
	BattleKindWild    BattleKind = "wild"
	BattleKindHandler BattleKind = "handler"
	BattleKindBoss    BattleKind = "boss"
)

// KnownBattleKind reports whether k is one of the supported encounter kinds.
func KnownBattleKind(k BattleKind) bool {
	switch k {
	case BattleKindWild, BattleKindHandler, BattleKindBoss:
		return true
	}
	return false
}

// ParticipantKind classifies a battler by side and by whether it is a
// creature or its handler.
type ParticipantKind string

const (
	KindPlayerCreature ParticipantKind = "player_creature"
	KindEnemyCreature  ParticipantKind = "enemy_creature"
	KindPlayerHandler  ParticipantKind = "player_handler"
	KindEnemyHandler   ParticipantKind = "enemy_handler"
)

// IsEnemy reports whether the kind belongs to the opposing side.
func (k ParticipantKind) IsEnemy() bool {
	return k == KindEnemyCreature || k == KindEnemyHandler
}

// IsCreature reports whether the kind is a creature rather than a handler.
func (k ParticipantKind) IsCreature() bool {
	return k == KindPlayerCreature || k == KindEnemyCreature
}

// Stance describes how one participant relates to another.
type Stance string

const (
	StanceHostile Stance = "hostile"
	StanceAllied  Stance = "allied"
	StanceNeutral Stance = "neutral"
)

// Phase is one step of the fixed battle cycle.
type Phase string

const (
	PhaseInitialize     Phase = "initialize"
	PhaseSelectAction   Phase = "select_action"
	PhaseResolveActions Phase = "resolve_actions"
	PhaseApplyEffects   Phase = "apply_effects"
	PhaseCheckVictory   Phase = "check_victory"
	PhaseEndTurn        Phase = "end_turn"
	PhaseBattleEnd      Phase = "battle_end"
)

// StatBlock holds the five combat stat levels shared by creatures and
// handlers. Levels are small integers (typically 1..10), not raw values.
type StatBlock struct {
	Power   int `json:"power"`
	Mind    int `json:"mind"`
	Defense int `json:"defense"`
	Spirit  int `json:"spirit"`
	Agility int `json:"agility"`
}

// Species is the static reference a creature combatant points at: its
// name, one or two elemental types and base stat levels.
type Species struct {
	Name     string    `json:"name"`
	Types    []string  `json:"types"`
	Stats    StatBlock `json:"stats"`
	MaxVigor int       `json:"max_vigor"`
}

// IndefiniteDuration marks a status effect or weather with no built-in
// expiry.
const IndefiniteDuration = -1

// StatusEffect is a named condition on a combatant. Names are unique per
// combatant; Duration counts remaining turns, with IndefiniteDuration
// meaning the effect does not expire on its own.
type StatusEffect struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Duration int    `json:"duration"`
	Severity int    `json:"severity"`
}

// CreatureCombatant is the creature payload of a participant.
type CreatureCombatant struct {
	Species       Species        `json:"species"`
	CurrentVigor  int            `json:"current_vigor"`
	MaxVigor      int            `json:"max_vigor"`
	StatusEffects []StatusEffect `json:"status_effects"`
	StatModifiers map[string]int `json:"stat_modifiers"`
	UsedMoves     []string       `json:"used_moves"`
}

// HandlerCombatant is the handler (human battler) payload of a
// participant. Handlers direct creatures and do not carry a vigor pool.
type HandlerCombatant struct {
	Name          string    `json:"name"`
	Stats         StatBlock `json:"stats"`
	Conditions    []string  `json:"conditions"`
	CanEscape     bool      `json:"can_escape"`
	RemainingTeam []string  `json:"remaining_team"`
}

// Combatant is the tagged-union payload of a Participant: exactly one of
// CreatureCombatant or HandlerCombatant. The interface is sealed so no
// third variant can appear.
type Combatant interface {
	combatant()
	// StatLevels returns the stat block used for hit and initiative math.
	StatLevels() StatBlock
}

func (*CreatureCombatant) combatant() {}
func (*HandlerCombatant) combatant()  {}

func (c *CreatureCombatant) StatLevels() StatBlock { return c.Species.Stats }
func (h *HandlerCombatant) StatLevels() StatBlock  { return h.Stats }

// ErrNoVigorPool is returned when a vigor mutation targets a handler
// participant.
var ErrNoVigorPool = errors.New("participant has no vigor pool")

// Participant is one battler in the encounter. The combatant payload is
// private and only reachable through Creature()/Handler(), so a
// participant can never hold both payloads (or neither) — construction
// goes through NewCreatureParticipant / NewHandlerParticipant.
type Participant struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Kind          ParticipantKind   `json:"kind"`
	Faction       string            `json:"faction"`
	Position      string            `json:"position"`
	Initiative    int               `json:"initiative"`
	HasActed      bool              `json:"has_acted"`
	IsDefeated    bool              `json:"is_defeated"`
	Relationships map[string]Stance `json:"relationships"`

	combatant Combatant
}

// NewCreatureParticipant builds a participant carrying a creature payload.
// MaxVigor falls back to the species value when unset; current vigor is
// clamped into [0, MaxVigor].
func NewCreatureParticipant(id, name string, kind ParticipantKind, faction string, c CreatureCombatant) *Participant {
	if c.MaxVigor <= 0 {
		c.MaxVigor = c.Species.MaxVigor
	}
	if c.CurrentVigor <= 0 || c.CurrentVigor > c.MaxVigor {
		c.CurrentVigor = c.MaxVigor
	}
	if c.StatModifiers == nil {
		c.StatModifiers = map[string]int{}
	}
	return &Participant{
		ID:            id,
		Name:          name,
		Kind:          kind,
		Faction:       faction,
		Relationships: map[string]Stance{},
		combatant:     &c,
	}
}

// NewHandlerParticipant builds a participant carrying a handler payload.
func NewHandlerParticipant(id, name string, kind ParticipantKind, faction string, h HandlerCombatant) *Participant {
	return &Participant{
		ID:            id,
		Name:          name,
		Kind:          kind,
		Faction:       faction,
		Relationships: map[string]Stance{},
		combatant:     &h,
	}
}

// Creature returns the creature payload, or nil when this participant is
// a handler.
func (p *Participant) Creature() *CreatureCombatant {
	if c, ok := p.combatant.(*CreatureCombatant); ok {
		return c
	}
	return nil
}

// Handler returns the handler payload, or nil when this participant is a
// creature.
func (p *Participant) Handler() *HandlerCombatant {
	if h, ok := p.combatant.(*HandlerCombatant); ok {
		return h
	}
	return nil
}

// StatLevels returns the participant's stat block; the zero block when
// the payload is absent (only possible for a zero-value Participant).
func (p *Participant) StatLevels() StatBlock {
	if p.combatant == nil {
		return StatBlock{}
	}
	return p.combatant.StatLevels()
}

// ApplyDamage reduces the creature's vigor by dmg, clamping at zero, and
// flips the one-way defeat flag when vigor reaches zero. It returns the
// vigor actually removed and whether this call defeated the target.
// Handler participants have no vigor pool and take no damage.
func (p *Participant) ApplyDamage(dmg int) (removed int, defeated bool) {
	c := p.Creature()
	if c == nil || dmg <= 0 {
		return 0, false
	}
	removed = dmg
	if removed > c.CurrentVigor {
		removed = c.CurrentVigor
	}
	c.CurrentVigor -= removed
	if c.CurrentVigor == 0 && !p.IsDefeated {
		p.IsDefeated = true
		return removed, true
	}
	return removed, false
}

// SetVigor forces the creature's vigor to v, clamped into [0, MaxVigor].
// Reaching zero marks the participant defeated; defeat is never reverted
// here even if vigor is raised again later.
func (p *Participant) SetVigor(v int) (old, now int, err error) {
	c := p.Creature()
	if c == nil {
		return 0, 0, ErrNoVigorPool
	}
	old = c.CurrentVigor
	if v < 0 {
		v = 0
	}
	if v > c.MaxVigor {
		v = c.MaxVigor
	}
	c.CurrentVigor = v
	if v == 0 {
		p.IsDefeated = true
	}
	return old, v, nil
}

// AddStatusEffect adds or replaces the effect with the same name on the
// creature payload. Effects are unique by name.
func (p *Participant) AddStatusEffect(e StatusEffect) bool {
	c := p.Creature()
	if c == nil {
		return false
	}
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Name == e.Name {
			c.StatusEffects[i] = e
			return true
		}
	}
	c.StatusEffects = append(c.StatusEffects, e)
	return true
}

// RemoveStatusEffect removes the named effect and reports whether it was
// present.
func (p *Participant) RemoveStatusEffect(name string) bool {
	c := p.Creature()
	if c == nil {
		return false
	}
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Name == name {
			c.StatusEffects = append(c.StatusEffects[:i], c.StatusEffects[i+1:]...)
			return true
		}
	}
	return false
}

// RecordMove appends the move name to the creature's used-move history.
func (p *Participant) RecordMove(name string) {
	if c := p.Creature(); c != nil {
		c.UsedMoves = append(c.UsedMoves, name)
	}
}

// participantJSON is the wire envelope for the tagged union: exactly one
// of the creature/handler keys is present.
type participantJSON struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Kind          ParticipantKind    `json:"kind"`
	Faction       string             `json:"faction"`
	Position      string             `json:"position"`
	Initiative    int                `json:"initiative"`
	HasActed      bool               `json:"has_acted"`
	IsDefeated    bool               `json:"is_defeated"`
	Relationships map[string]Stance  `json:"relationships"`
	Creature      *CreatureCombatant `json:"creature,omitempty"`
	Handler       *HandlerCombatant  `json:"handler,omitempty"`
}

func (p *Participant) MarshalJSON() ([]byte, error) {
	env := participantJSON{
		ID:            p.ID,
		Name:          p.Name,
		Kind:          p.Kind,
		Faction:       p.Faction,
		Position:      p.Position,
		Initiative:    p.Initiative,
		HasActed:      p.HasActed,
		IsDefeated:    p.IsDefeated,
		Relationships: p.Relationships,
		Creature:      p.Creature(),
		Handler:       p.Handler(),
	}
	return json.Marshal(env)
}

func (p *Participant) UnmarshalJSON(b []byte) error {
	var env participantJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	if (env.Creature == nil) == (env.Handler == nil) {
		return errors.New("participant must carry exactly one of creature/handler")
	}
	p.ID = env.ID
	p.Name = env.Name
	p.Kind = env.Kind
	p.Faction = env.Faction
	p.Position = env.Position
	p.Initiative = env.Initiative
	p.HasActed = env.HasActed
	p.IsDefeated = env.IsDefeated
	p.Relationships = env.Relationships
	if p.Relationships == nil {
		p.Relationships = map[string]Stance{}
	}
	if env.Creature != nil {
		p.combatant = env.Creature
	} else {
		p.combatant = env.Handler
	}
	return nil
}

// Hazard is a battlefield-scoped persistent effect tied to a position.
// Hazard application happens during the apply-effects phase, which is an
// extension hook owned by ruleset collaborators.
type Hazard struct {
	Position string `json:"position"`
	Effect   string `json:"effect"`
}

// Battlefield names the arena and its hazards.
type Battlefield struct {
	Name    string   `json:"name"`
	Hazards []Hazard `json:"hazards"`
}

// Weather is the current weather, optionally expiring after Duration
// turns (IndefiniteDuration means it persists).
type Weather struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// VictoryConditionType enumerates the supported victory checks.
type VictoryConditionType string

const (
	VictoryDefeatAllEnemies VictoryConditionType = "defeat_all_enemies"
	VictoryDefeatTarget     VictoryConditionType = "defeat_target"
	VictorySurvival         VictoryConditionType = "survival"
	VictoryEscape           VictoryConditionType = "escape"
	VictoryObjective        VictoryConditionType = "objective"
	VictoryTimer            VictoryConditionType = "timer"
)

// VictoryCondition describes one way the battle can end. Params carries
// type-specific values: "target_id" for defeat_target, "turns" for
// survival, "time_limit" (RFC3339) for timer.
type VictoryCondition struct {
	Type        VictoryConditionType `json:"type"`
	Params      map[string]string    `json:"params"`
	Description string               `json:"description"`
}

// BattleLogEntry is one immutable record of a battle mutation.
type BattleLogEntry struct {
	Turn      int       `json:"turn"`
	Phase     Phase     `json:"phase"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	TargetIDs []string  `json:"target_ids"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// BattleState aggregates everything about one encounter. It is created
// once per battle, mutated in place by the engine and deactivated on
// end. Callers must serialize operations against a given state.
type BattleState struct {
	ID                string             `json:"id"`
	IsActive          bool               `json:"is_active"`
	Kind              BattleKind         `json:"kind"`
	CurrentTurn       int                `json:"current_turn"`
	CurrentPhase      Phase              `json:"current_phase"`
	Participants      []*Participant     `json:"participants"`
	TurnOrder         []string           `json:"turn_order"`
	CurrentActorID    string             `json:"current_actor_id"`
	Battlefield       Battlefield        `json:"battlefield"`
	Weather           Weather            `json:"weather"`
	VictoryConditions []VictoryCondition `json:"victory_conditions"`
	Log               []BattleLogEntry   `json:"log"`
}

// FindParticipant returns the participant with the given id, or nil.
func (s *BattleState) FindParticipant(id string) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddParticipant appends p and wires relationships symmetrically against
// every present participant: same faction means allied, anything else
// hostile. Relationships are freely mutable afterward.
func (s *BattleState) AddParticipant(p *Participant) {
	for _, other := range s.Participants {
		stance := StanceHostile
		if other.Faction == p.Faction {
			stance = StanceAllied
		}
		p.Relationships[other.ID] = stance
		other.Relationships[p.ID] = stance
	}
	s.Participants = append(s.Participants, p)
}

// RemoveParticipant drops the participant with the given id and scrubs
// it from everyone's relationship map. It reports whether it was present.
func (s *BattleState) RemoveParticipant(id string) bool {
	for i, p := range s.Participants {
		if p.ID == id {
			s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
			for _, other := range s.Participants {
				delete(other.Relationships, id)
			}
			return true
		}
	}
	return false
}

// ResetHasActed clears the per-turn action flag for every participant.
// Only the transition into select_action calls this.
func (s *BattleState) ResetHasActed() {
	for _, p := range s.Participants {
		p.HasActed = false
	}
}

// AppendLog appends one entry to the battle log, stamping the current
// turn and phase. The log is append-only; there is no mutation or
// deletion API.
func (s *BattleState) AppendLog(actorID, action string, targetIDs []string, result string) {
	s.Log = append(s.Log, BattleLogEntry{
		Turn:      s.CurrentTurn,
		Phase:     s.CurrentPhase,
		ActorID:   actorID,
		Action:    action,
		TargetIDs: targetIDs,
		Result:    result,
		Timestamp: time.Now().UTC(),
	})
}

// LogTail returns up to count trailing entries, optionally filtered by
// actor id. A count of zero or less means no limit. The returned slice
// is a copy; reads never mutate the log.
func (s *BattleState) LogTail(count int, actorID string) []BattleLogEntry {
	entries := s.Log
	if actorID != "" {
		filtered := make([]BattleLogEntry, 0, len(entries))
		for _, e := range entries {
			if e.ActorID == actorID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if count > 0 && len(entries) > count {
		entries = entries[len(entries)-count:]
	}
	out := make([]BattleLogEntry, len(entries))
	copy(out, entries)
	return out
}
