package engine

import (
	"testing"

	"github.com/Dorely/beastbound/internal/game"
)

func TestRollInitiative_FormulaAndOrder(t *testing.T) {
	s := &game.BattleState{}
	s.AddParticipant(creature("slow", "Slow", game.KindPlayerCreature, "players",
		game.StatBlock{Agility: 1}, []string{"normal"}, 10))
	s.AddParticipant(creature("fast", "Fast", game.KindEnemyCreature, "enemies",
		game.StatBlock{Agility: 5}, []string{"normal"}, 10))

	// Rolls land in roster order: slow gets 20, fast gets 3.
	RollInitiative(s, &scriptedSource{rolls: []int{20, 3}})

	if got := s.FindParticipant("slow").Initiative; got != 30 {
		t.Fatalf("expected initiative 1*10+20=30, got %d", got)
	}
	if got := s.FindParticipant("fast").Initiative; got != 53 {
		t.Fatalf("expected initiative 5*10+3=53, got %d", got)
	}
	if len(s.TurnOrder) != 2 || s.TurnOrder[0] != "fast" || s.TurnOrder[1] != "slow" {
		t.Fatalf("expected order [fast slow], got %v", s.TurnOrder)
	}
	if s.CurrentActorID != "fast" {
		t.Fatalf("current actor should lead the order, got %s", s.CurrentActorID)
	}
}

func TestRollInitiative_TiesKeepRosterOrder(t *testing.T) {
	s := &game.BattleState{}
	for _, id := range []string{"p1", "p2", "p3"} {
		s.AddParticipant(creature(id, id, game.KindPlayerCreature, "players",
			game.StatBlock{Agility: 2}, []string{"normal"}, 10))
	}

	RollInitiative(s, &scriptedSource{rolls: []int{10, 10, 10}})

	want := []string{"p1", "p2", "p3"}
	for i, id := range want {
		if s.TurnOrder[i] != id {
			t.Fatalf("tied initiative must keep roster order, got %v", s.TurnOrder)
		}
	}
}

func TestRollInitiative_StatModifiersCount(t *testing.T) {
	s := &game.BattleState{}
	p := creature("p1", "P1", game.KindPlayerCreature, "players",
		game.StatBlock{Agility: 3}, []string{"normal"}, 10)
	p.Creature().StatModifiers[StatAgility] = -2
	s.AddParticipant(p)

	RollInitiative(s, &scriptedSource{rolls: []int{7}})

	if p.Initiative != 17 {
		t.Fatalf("expected (3-2)*10+7=17, got %d", p.Initiative)
	}
}

func TestRollInitiative_EmptyRoster(t *testing.T) {
	s := &game.BattleState{CurrentActorID: "stale"}
	RollInitiative(s, &scriptedSource{})
	if len(s.TurnOrder) != 0 || s.CurrentActorID != "" {
		t.Fatalf("empty roster should clear order and actor, got %v / %q", s.TurnOrder, s.CurrentActorID)
	}
}
