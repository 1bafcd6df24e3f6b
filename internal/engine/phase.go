package engine

import "github.com/Dorely/beastbound/internal/game"

// NextPhase returns the successor of p in the fixed cycle. battle_end is
// terminal and only loops onto itself.
func NextPhase(p game.Phase) game.Phase {
	switch p {
	case game.PhaseInitialize:
		return game.PhaseSelectAction
	case game.PhaseSelectAction:
		return game.PhaseResolveActions
	case game.PhaseResolveActions:
		return game.PhaseApplyEffects
	case game.PhaseApplyEffects:
		return game.PhaseCheckVictory
	case game.PhaseCheckVictory:
		return game.PhaseEndTurn
	case game.PhaseEndTurn:
		return game.PhaseSelectAction
	case game.PhaseBattleEnd:
		return game.PhaseBattleEnd
	}
	return game.PhaseInitialize
}

// AdvancePhase moves the battle to the next phase and returns the
// resulting turn and phase. Entering select_action starts a new turn:
// the turn counter increments and every participant's has-acted flag is
// cleared. No other phase carries built-in side effects; apply_effects
// in particular stays an empty hook for status-tick, hazard and weather
// logic owned by ruleset collaborators. Every transition appends a log
// entry.
func AdvancePhase(s *game.BattleState) (int, game.Phase) {
	next := NextPhase(s.CurrentPhase)
	s.CurrentPhase = next
	if next == game.PhaseSelectAction {
		s.CurrentTurn++
		s.ResetHasActed()
	}
	s.AppendLog("", "phase_advanced", nil, "Phase Advanced: "+string(next))
	return s.CurrentTurn, next
}
