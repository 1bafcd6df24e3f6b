package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Dorely/beastbound/internal/game"
)

// ConditionResult is the evaluation of a single victory condition.
type ConditionResult struct {
	Type   game.VictoryConditionType `json:"type"`
	Met    bool                      `json:"met"`
	Reason string                    `json:"reason"`
}

// EvaluateVictory checks every victory condition against the current
// state without mutating anything. The aggregate is any-met: the battle
// counts as decided as soon as one condition is satisfied.
//
// escape and objective conditions need state this engine does not track
// (an escaped flag, objective progress); they evaluate to false as a
// documented extension point rather than a guess.
func EvaluateVictory(s *game.BattleState, now time.Time) (bool, string, []ConditionResult) {
	results := make([]ConditionResult, 0, len(s.VictoryConditions))
	met := false
	reason := "no victory condition met"
	for _, cond := range s.VictoryConditions {
		res := evaluateCondition(s, cond, now)
		results = append(results, res)
		if res.Met && !met {
			met = true
			reason = res.Reason
		}
	}
	return met, reason, results
}

func evaluateCondition(s *game.BattleState, cond game.VictoryCondition, now time.Time) ConditionResult {
	res := ConditionResult{Type: cond.Type}
	switch cond.Type {
	case game.VictoryDefeatAllEnemies:
		remaining := 0
		for _, p := range s.Participants {
			if p.Kind.IsEnemy() && p.Kind.IsCreature() && !p.IsDefeated {
				remaining++
			}
		}
		if remaining == 0 {
			res.Met = true
			res.Reason = "all enemy creatures are defeated"
		} else {
			res.Reason = fmt.Sprintf("%d enemy creatures still standing", remaining)
		}
	case game.VictoryDefeatTarget:
		id := cond.Params["target_id"]
		target := s.FindParticipant(id)
		if target == nil {
			res.Reason = fmt.Sprintf("target %s is not in this battle", id)
			return res
		}
		if target.IsDefeated {
			res.Met = true
			res.Reason = fmt.Sprintf("%s is defeated", target.Name)
		} else {
			res.Reason = fmt.Sprintf("%s still stands", target.Name)
		}
	case game.VictorySurvival:
		turns, err := strconv.Atoi(cond.Params["turns"])
		if err != nil || turns <= 0 {
			res.Reason = "survival condition has no valid turn count"
			return res
		}
		if s.CurrentTurn >= turns {
			res.Met = true
			res.Reason = fmt.Sprintf("survived %d turns", turns)
		} else {
			res.Reason = fmt.Sprintf("turn %d of %d", s.CurrentTurn, turns)
		}
	case game.VictoryTimer:
		limit, err := time.Parse(time.RFC3339, cond.Params["time_limit"])
		if err != nil {
			res.Reason = "timer condition has no valid time limit"
			return res
		}
		if !now.Before(limit) {
			res.Met = true
			res.Reason = "time limit reached"
		} else {
			res.Reason = "time limit not reached"
		}
	case game.VictoryEscape, game.VictoryObjective:
		// Extension point: requires tracked state this core does not own.
		res.Reason = string(cond.Type) + " tracking is not implemented by this engine"
	default:
		res.Reason = fmt.Sprintf("unknown victory condition %q", cond.Type)
	}
	return res
}
