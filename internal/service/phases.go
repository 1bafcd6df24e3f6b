package service

import (
	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
)

// PhaseStatus reports where the battle stands after a phase advance.
type PhaseStatus struct {
	CurrentTurn  int        `json:"current_turn"`
	CurrentPhase game.Phase `json:"current_phase"`
}

// AdvancePhase moves the battle one step through the fixed phase cycle
// and persists the result.
func (s *BattleService) AdvancePhase() (*PhaseStatus, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	turn, phase := engine.AdvancePhase(st)
	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	return &PhaseStatus{CurrentTurn: turn, CurrentPhase: phase}, nil
}

// VictoryReport is the aggregated victory evaluation: any-met across
// the battle's condition list, plus the per-condition breakdown.
type VictoryReport struct {
	Met        bool                     `json:"met"`
	Reason     string                   `json:"reason"`
	Conditions []engine.ConditionResult `json:"conditions"`
}

// EvaluateVictory checks the battle's victory conditions. The scan is
// read-only; nothing is persisted.
func (s *BattleService) EvaluateVictory() (*VictoryReport, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	met, reason, conditions := engine.EvaluateVictory(st, s.now())
	return &VictoryReport{Met: met, Reason: reason, Conditions: conditions}, nil
}

// GetLog returns up to count trailing log entries, optionally filtered
// by actor id.
func (s *BattleService) GetLog(count int, actorID string) ([]game.BattleLogEntry, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}
	return st.LogTail(count, actorID), nil
}
