package engine

import (
	"sort"

	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/rng"
)

// RollInitiative recomputes initiative for every participant and derives
// the turn order. initiative = agility level x 10 + d20; a participant
// with no payload rolls a bare d20. Ties keep roster order (stable
// sort). The whole calculation is re-run on every roster change, never
// incrementally patched.
func RollInitiative(s *game.BattleState, src rng.Source) {
	for _, p := range s.Participants {
		p.Initiative = effectiveStat(p, StatAgility)*10 + src.NextInt(1, 20)
	}

	order := make([]*game.Participant, len(s.Participants))
	copy(order, s.Participants)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Initiative > order[j].Initiative
	})

	s.TurnOrder = make([]string, len(order))
	for i, p := range order {
		s.TurnOrder[i] = p.ID
	}
	if len(s.TurnOrder) > 0 {
		s.CurrentActorID = s.TurnOrder[0]
	} else {
		s.CurrentActorID = ""
	}
}
