package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/rng"
	"github.com/Dorely/beastbound/internal/typechart"
)

// Dice used by attack resolution: d20 to hit, d6 for damage.
const (
	hitDie    = 20
	damageDie = 6
	critRoll  = 20
)

// ResolveAction executes one submitted action against the battle state.
// Validation failures (unknown actor, defeated actor, unknown kind,
// missing move metadata) return an error before any mutation. A
// successful call marks the actor as having acted, applies per-target
// damage in submission order and appends exactly one log entry.
//
// Unknown targets do not fail the call: that target's result is
// not_found and the remaining targets still resolve.
func ResolveAction(s *game.BattleState, src rng.Source, req ActionRequest) ([]ActionResult, error) {
	actor := s.FindParticipant(req.ActorID)
	if actor == nil {
		return nil, ErrActorNotFound
	}
	if actor.IsDefeated {
		return nil, ErrActorDefeated
	}
	if !KnownActionKind(req.Kind) {
		return nil, ErrInvalidActionKind
	}

	if req.Kind != ActionAttack {
		return resolvePlaceholder(s, actor, req)
	}

	if req.Move.Name == "" || req.Move.DamageDice < 1 {
		return nil, ErrMissingMove
	}

	results := make([]ActionResult, 0, len(req.TargetIDs))
	notes := make([]string, 0, len(req.TargetIDs))
	for _, targetID := range req.TargetIDs {
		res := resolveAttackTarget(s, src, actor, targetID, req.Move)
		results = append(results, res)
		notes = append(notes, res.Detail)
	}

	actor.HasActed = true
	actor.RecordMove(req.Move.Name)
	s.AppendLog(actor.ID, string(ActionAttack)+":"+req.Move.Name, req.TargetIDs, strings.Join(notes, "; "))
	return results, nil
}

// resolveAttackTarget runs the full hit/damage pipeline for one target.
// Each target is processed independently: its roll, dice, critical and
// effectiveness do not leak into the next target's resolution.
func resolveAttackTarget(s *game.BattleState, src rng.Source, actor *game.Participant, targetID string, move MoveSpec) ActionResult {
	target := s.FindParticipant(targetID)
	if target == nil {
		return ActionResult{
			TargetID: targetID,
			Outcome:  OutcomeNotFound,
			Detail:   fmt.Sprintf("%s: no such target", targetID),
		}
	}

	attackStat := effectiveStat(actor, StatPower)
	defenseStat := effectiveStat(target, StatDefense)
	if move.Special {
		attackStat = effectiveStat(actor, StatMind)
		defenseStat = effectiveStat(target, StatSpirit)
	}
	defenseValue := 10 + defenseStat

	roll := src.NextInt(1, hitDie)
	if roll+attackStat < defenseValue {
		return ActionResult{
			TargetID: targetID,
			Outcome:  OutcomeMiss,
			Roll:     roll,
			Detail:   fmt.Sprintf("%s misses %s (%d+%d vs %d)", move.Name, target.Name, roll, attackStat, defenseValue),
		}
	}

	bonusDice := attackStat / 2
	totalDice := move.DamageDice + bonusDice
	damage := 0
	for i := 0; i < totalDice; i++ {
		damage += src.NextInt(1, damageDie)
	}

	critical := roll == critRoll
	if critical {
		damage = int(math.Floor(float64(damage) * 1.5))
	}

	// Type effectiveness scales the numeric damage and is always
	// recorded on the result.
	t1, t2 := creatureTypes(target)
	mult := typechart.Effectiveness(move.Type, t1, t2)
	final := int(math.Floor(float64(damage) * mult))

	res := ActionResult{
		TargetID:      targetID,
		Outcome:       OutcomeHit,
		Roll:          roll,
		Critical:      critical,
		Effectiveness: mult,
	}

	if target.Creature() == nil {
		// Handlers have no vigor pool; the hit lands but removes nothing.
		res.Outcome = OutcomeNoVigorPool
		res.Detail = fmt.Sprintf("%s hits %s but handlers take no vigor damage", move.Name, target.Name)
		return res
	}

	removed, defeatedNow := target.ApplyDamage(final)
	res.Damage = removed
	res.Defeated = defeatedNow

	detail := fmt.Sprintf("%s hits %s for %d damage (roll %d+%d vs %d, %d dice, x%.2g)",
		move.Name, target.Name, removed, roll, attackStat, defenseValue, totalDice, mult)
	if critical {
		detail += " (critical hit)"
	}
	if defeatedNow {
		detail += fmt.Sprintf("; %s is defeated", target.Name)
	}
	res.Detail = detail
	return res
}

// resolvePlaceholder handles switch/item/escape: the engine only marks
// the actor as acted and returns a structured acknowledgement; detailed
// mechanics belong to ruleset collaborators outside this core.
func resolvePlaceholder(s *game.BattleState, actor *game.Participant, req ActionRequest) ([]ActionResult, error) {
	actor.HasActed = true
	detail := fmt.Sprintf("%s delegated to ruleset collaborator", req.Kind)
	s.AppendLog(actor.ID, string(req.Kind), req.TargetIDs, detail)
	return []ActionResult{{
		Outcome: OutcomeAcknowledged,
		Detail:  detail,
	}}, nil
}
