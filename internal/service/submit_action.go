package service

import (
	"errors"
	"strings"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/logging"
)

// ResolveAction executes one action for the given actor. For attacks,
// the move metadata may be supplied inline or resolved by name from the
// configured move catalog (the ruleset hook). Engine validation errors
// surface before any mutation, so a rejected call never persists.
func (s *BattleService) ResolveAction(actorID string, kind engine.ActionKind, targetIDs []string, move engine.MoveSpec) ([]engine.ActionResult, error) {
	st, err := s.activeBattle()
	if err != nil {
		return nil, err
	}

	if kind == engine.ActionAttack && move.DamageDice == 0 && move.Name != "" {
		catalogMove, ok := s.moves[strings.ToLower(move.Name)]
		if !ok {
			return nil, ErrUnknownMove
		}
		move = catalogMove
	}

	results, err := engine.ResolveAction(st, s.src, engine.ActionRequest{
		ActorID:   actorID,
		Kind:      kind,
		TargetIDs: targetIDs,
		Move:      move,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrActorNotFound):
			return nil, ErrParticipantNotFound
		case errors.Is(err, engine.ErrActorDefeated):
			return nil, ErrActorDefeated
		default:
			return nil, ErrInvalidAction
		}
	}

	if err := s.repo.SaveBattle(st); err != nil {
		return nil, err
	}
	logging.Info("Action resolved", logging.Fields{
		constants.LogFieldBattleID: st.ID,
		constants.LogFieldActorID:  actorID,
		constants.LogFieldTurn:     st.CurrentTurn,
		constants.LogFieldPhase:    string(st.CurrentPhase),
	})
	return results, nil
}
