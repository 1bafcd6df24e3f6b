package service

import (
	"github.com/google/uuid"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/logging"
)

// AddParticipant inserts a battler mid-battle. The roster change forces
// a full initiative and turn-order recompute.
func (s *BattleService) AddParticipant(p *game.Participant) (*game.BattleState, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if st.FindParticipant(p.ID) != nil {
		return nil, ErrDuplicateParticipant
	}
	if err := s.normalizeCreature(p); err != nil {
		return nil, err
	}
	st.AddParticipant(p)
	engine.RollInitiative(st, s.src)
	st.AppendLog(p.ID, "participant_joined", nil, p.Name+" joined the battle")

	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	logging.Info("Participant joined", logging.Fields{
		constants.LogFieldBattleID:    st.ID,
		constants.LogFieldParticipant: p.ID,
	})
	return st, nil
}

// RemoveParticipant drops a battler mid-battle and recomputes the turn
// order from the remaining roster.
func (s *BattleService) RemoveParticipant(id string) (*game.BattleState, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	p := st.FindParticipant(id)
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	name := p.Name
	st.RemoveParticipant(id)
	engine.RollInitiative(st, s.src)
	st.AppendLog(id, "participant_left", nil, name+" left the battle")

	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	logging.Info("Participant left", logging.Fields{
		constants.LogFieldBattleID:    st.ID,
		constants.LogFieldParticipant: id,
	})
	return st, nil
}

// VigorUpdate reports the before/after of a forced vigor change.
type VigorUpdate struct {
	OldVigor   int  `json:"old_vigor"`
	NewVigor   int  `json:"new_vigor"`
	IsDefeated bool `json:"is_defeated"`
}

// UpdateVigor forces a participant's vigor to a new value (clamped into
// [0, max]). Hitting zero marks the participant defeated; defeat is
// one-way and never reverted here.
func (s *BattleService) UpdateVigor(id string, newVigor int, reason string) (*VigorUpdate, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	p := st.FindParticipant(id)
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	old, now, err := p.SetVigor(newVigor)
	if err != nil {
		return nil, ErrNoVigorPool
	}
	st.AppendLog(id, "vigor_updated", nil, reason)

	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	return &VigorUpdate{OldVigor: old, NewVigor: now, IsDefeated: p.IsDefeated}, nil
}

// ApplyStatusEffect adds (or replaces, by name) a status effect on the
// target creature.
func (s *BattleService) ApplyStatusEffect(targetID string, effect game.StatusEffect) error {
	if effect.Name == "" {
		return ErrInvalidStatusEffect
	}
	st, err := s.activeBattle()
	if err != nil {
		return err
	}
	p := st.FindParticipant(targetID)
	if p == nil {
		return ErrParticipantNotFound
	}
	if !p.AddStatusEffect(effect) {
		return ErrNoVigorPool
	}
	st.AppendLog(targetID, "status_applied", nil, p.Name+" gains "+effect.Name)
	return s.repo.SaveBattle(st)
}

// RemoveStatusEffect removes the named effect from the target and
// reports whether it was present. Removing an absent effect is not an
// error.
func (s *BattleService) RemoveStatusEffect(targetID, name string) (bool, error) {
	st, err := s.activeBattle()
	if err != nil {
		return false, err
	}
	p := st.FindParticipant(targetID)
	if p == nil {
		return false, ErrParticipantNotFound
	}
	removed := p.RemoveStatusEffect(name)
	if !removed {
		return false, nil
	}
	st.AppendLog(targetID, "status_removed", nil, p.Name+" loses "+name)
	if err := s.repo.SaveBattle(st); err != nil {
		return false, err
	}
	return true, nil
}
