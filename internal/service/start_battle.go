package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/logging"
)

// StartBattleRequest carries everything needed to open an encounter.
// Victory conditions are optional; when empty the battle defaults to
// defeat-all-enemies.
type StartBattleRequest struct {
	Kind              game.BattleKind
	Participants      []*game.Participant
	BattlefieldName   string
	Weather           game.Weather
	VictoryConditions []game.VictoryCondition
}

// StartBattle opens a new encounter: it validates the request, seeds
// symmetric relationships, rolls initiative and persists the initial
// state. Starting while a battle is active is a state conflict and
// leaves the existing battle untouched.
func (s *BattleService) StartBattle(req StartBattleRequest) (*game.BattleState, error) {
	active, err := s.repo.HasActiveBattle()
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrBattleAlreadyActive
	}
	if !game.KnownBattleKind(req.Kind) {
		return nil, ErrInvalidBattleKind
	}
	if len(req.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	st := &game.BattleState{
		ID:           uuid.NewString(),
		IsActive:     true,
		Kind:         req.Kind,
		CurrentTurn:  0,
		CurrentPhase: game.PhaseInitialize,
		Battlefield:  game.Battlefield{Name: req.BattlefieldName},
		Weather:      req.Weather,
	}

	seen := make(map[string]struct{}, len(req.Participants))
	for _, p := range req.Participants {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if _, dup := seen[p.ID]; dup {
			return nil, ErrDuplicateParticipant
		}
		seen[p.ID] = struct{}{}
		if err := s.normalizeCreature(p); err != nil {
			return nil, err
		}
		st.AddParticipant(p)
	}

	st.VictoryConditions = req.VictoryConditions
	if len(st.VictoryConditions) == 0 {
		st.VictoryConditions = []game.VictoryCondition{{
			Type:        game.VictoryDefeatAllEnemies,
			Description: "Defeat every enemy creature",
		}}
	}

	engine.RollInitiative(st, s.src)
	st.AppendLog("", "battle_started", nil, "Battle started on "+st.Battlefield.Name)

	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	logging.Info("Battle started", logging.Fields{
		constants.LogFieldBattleID: st.ID,
		"kind":                     string(st.Kind),
		"participants":             len(st.Participants),
	})
	return st, nil
}

// EndBattle deactivates the current battle, records the encounter for
// the stats table and persists the terminal state.
func (s *BattleService) EndBattle(reason string) error {
	st, err := s.activeBattle()
	if err != nil {
		return err
	}
	st.IsActive = false
	st.CurrentPhase = game.PhaseBattleEnd
	st.AppendLog("", "battle_ended", nil, "Battle ended: "+reason)

	if err := s.repo.RecordEncounter(st, reason); err != nil {
		return err
	}
	if err := s.repo.SaveBattle(st); err != nil {
		return err
	}
	logging.Info("Battle ended", logging.Fields{
		constants.LogFieldBattleID: st.ID,
		constants.LogFieldReason:   reason,
		constants.LogFieldTurn:     st.CurrentTurn,
	})
	return nil
}

// normalizeCreature resolves a creature's species from the configured
// catalog when the payload references it by name only (a fully
// specified species on the payload always wins), then applies the same
// vigor defaults the constructors apply. Participants bound from JSON
// bypass the constructors, so this is where their vigor pool becomes
// valid: MaxVigor falls back to the species value and must end up
// positive, and CurrentVigor is clamped into [1, MaxVigor].
func (s *BattleService) normalizeCreature(p *game.Participant) error {
	c := p.Creature()
	if c == nil {
		return nil
	}
	if len(c.Species.Types) == 0 && c.Species.Name != "" {
		if sp, ok := s.species[strings.ToLower(c.Species.Name)]; ok {
			c.Species = sp
		}
	}
	if c.MaxVigor <= 0 {
		c.MaxVigor = c.Species.MaxVigor
	}
	if c.MaxVigor <= 0 {
		return ErrInvalidParticipant
	}
	if c.CurrentVigor <= 0 || c.CurrentVigor > c.MaxVigor {
		c.CurrentVigor = c.MaxVigor
	}
	if c.StatModifiers == nil {
		c.StatModifiers = map[string]int{}
	}
	return nil
}
