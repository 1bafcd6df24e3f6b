package service

import (
	"encoding/json"
	"testing"

	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/storage"
)

type mockRepo struct {
	battle     *game.BattleState
	saveCalls  int
	saveErr    error
	encounters []storage.EncounterStat
}

func (m *mockRepo) GetActiveBattle() (*game.BattleState, error) {
	if m.battle == nil || !m.battle.IsActive {
		return nil, nil
	}
	return m.battle, nil
}

func (m *mockRepo) HasActiveBattle() (bool, error) {
	return m.battle != nil && m.battle.IsActive, nil
}

func (m *mockRepo) SaveBattle(s *game.BattleState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.battle = s
	m.saveCalls++
	return nil
}

func (m *mockRepo) RecordEncounter(s *game.BattleState, reason string) error {
	m.encounters = append(m.encounters, storage.EncounterStat{
		BattleID:     s.ID,
		Kind:         string(s.Kind),
		Turns:        s.CurrentTurn,
		Participants: len(s.Participants),
		EndedReason:  reason,
	})
	return nil
}

func (m *mockRepo) GetRecentEncounters(limit int) ([]storage.EncounterStat, error) {
	return m.encounters, nil
}

// scriptedSource replays a fixed roll list; exhausted scripts return min.
type scriptedSource struct {
	rolls []int
	i     int
}

func (s *scriptedSource) NextInt(min, max int) int {
	if s.i >= len(s.rolls) {
		return min
	}
	v := s.rolls[s.i]
	s.i++
	return v
}

func testCreature(id, name string, kind game.ParticipantKind, faction string) *game.Participant {
	return game.NewCreatureParticipant(id, name, kind, faction, game.CreatureCombatant{
		Species: game.Species{
			Name:     name,
			Types:    []string{"normal"},
			Stats:    game.StatBlock{Power: 3, Mind: 2, Defense: 1, Spirit: 1, Agility: 2},
			MaxVigor: 50,
		},
	})
}

func testService(repo *mockRepo, rolls ...int) *BattleService {
	return NewBattleService(repo, &scriptedSource{rolls: rolls},
		[]engine.MoveSpec{{Name: "Tackle", Type: "normal", DamageDice: 2}},
		[]game.Species{{
			Name:     "Cindertail",
			Types:    []string{"ember"},
			Stats:    game.StatBlock{Power: 4, Mind: 2, Defense: 2, Spirit: 2, Agility: 3},
			MaxVigor: 40,
		}})
}

func wildRequest() StartBattleRequest {
	return StartBattleRequest{
		Kind:            game.BattleKindWild,
		BattlefieldName: "meadow",
		Participants: []*game.Participant{
			testCreature("a1", "Sparky", game.KindPlayerCreature, "players"),
			testCreature("e1", "Grub", game.KindEnemyCreature, "enemies"),
		},
	}
}

func TestStartBattle(t *testing.T) {
	repo := &mockRepo{}
	svc := testService(repo, 10, 10)

	st, err := svc.StartBattle(wildRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ID == "" || !st.IsActive {
		t.Fatalf("expected an active battle with an id, got %+v", st)
	}
	if st.CurrentTurn != 0 || st.CurrentPhase != game.PhaseInitialize {
		t.Fatalf("battle should open at turn 0 in initialize, got %d/%s", st.CurrentTurn, st.CurrentPhase)
	}
	if len(st.TurnOrder) != 2 {
		t.Fatalf("initiative should cover the roster, got %v", st.TurnOrder)
	}
	if len(st.VictoryConditions) != 1 || st.VictoryConditions[0].Type != game.VictoryDefeatAllEnemies {
		t.Fatalf("expected default defeat-all-enemies condition, got %+v", st.VictoryConditions)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("start should persist once, got %d saves", repo.saveCalls)
	}
}

func TestStartBattle_RejectsSecondBattle(t *testing.T) {
	repo := &mockRepo{}
	svc := testService(repo, 10, 10, 10, 10)

	first, err := svc.StartBattle(wildRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.StartBattle(wildRequest()); err != ErrBattleAlreadyActive {
		t.Fatalf("expected ErrBattleAlreadyActive, got %v", err)
	}
	if repo.battle != first || repo.saveCalls != 1 {
		t.Fatalf("rejected start must leave the active battle untouched")
	}
}

func TestStartBattle_Validation(t *testing.T) {
	svc := testService(&mockRepo{})

	req := wildRequest()
	req.Kind = "ambush"
	if _, err := svc.StartBattle(req); err != ErrInvalidBattleKind {
		t.Fatalf("expected ErrInvalidBattleKind, got %v", err)
	}

	req = wildRequest()
	req.Participants = nil
	if _, err := svc.StartBattle(req); err != ErrNoParticipants {
		t.Fatalf("expected ErrNoParticipants, got %v", err)
	}

	req = wildRequest()
	req.Participants[1].ID = "a1"
	if _, err := svc.StartBattle(req); err != ErrDuplicateParticipant {
		t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
	}
}

func TestStartBattle_FillsSpeciesFromCatalog(t *testing.T) {
	svc := testService(&mockRepo{}, 10, 10)

	req := wildRequest()
	req.Participants[0] = game.NewCreatureParticipant("a1", "Blaze", game.KindPlayerCreature, "players",
		game.CreatureCombatant{Species: game.Species{Name: "cindertail"}})

	st, err := svc.StartBattle(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := st.FindParticipant("a1").Creature()
	if len(c.Species.Types) != 1 || c.Species.Types[0] != "ember" {
		t.Fatalf("species should resolve from the catalog, got %+v", c.Species)
	}
	if c.CurrentVigor != 40 || c.MaxVigor != 40 {
		t.Fatalf("vigor should follow the catalog species, got %d/%d", c.CurrentVigor, c.MaxVigor)
	}
}

// boundParticipant mirrors the HTTP path: participants arrive through
// JSON binding, not through the constructors.
func boundParticipant(t *testing.T, raw string) *game.Participant {
	t.Helper()
	var p game.Participant
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal participant: %v", err)
	}
	return &p
}

func TestStartBattle_DefaultsVigorForBoundCreature(t *testing.T) {
	repo := &mockRepo{}
	svc := testService(repo, 10, 10)

	// Inline species carries max_vigor but the combatant-level vigor
	// fields are absent.
	req := wildRequest()
	req.Participants[0] = boundParticipant(t, `{
		"id": "a1", "name": "Sparky", "kind": "player_creature", "faction": "players",
		"creature": {"species": {"name": "Wildling", "types": ["normal"],
			"stats": {"power": 3, "agility": 2}, "max_vigor": 30}}
	}`)

	st, err := svc.StartBattle(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := st.FindParticipant("a1")
	c := p.Creature()
	if c.MaxVigor != 30 || c.CurrentVigor != 30 {
		t.Fatalf("vigor should default from the species, got %d/%d", c.CurrentVigor, c.MaxVigor)
	}
	if p.IsDefeated {
		t.Fatalf("a fresh participant must not start defeated")
	}
}

func TestStartBattle_RejectsCreatureWithoutVigorPool(t *testing.T) {
	svc := testService(&mockRepo{})

	// No max_vigor anywhere: not on the combatant, not on the species,
	// and the species name is not in the catalog.
	req := wildRequest()
	req.Participants[0] = boundParticipant(t, `{
		"id": "a1", "name": "Sparky", "kind": "player_creature", "faction": "players",
		"creature": {"species": {"name": "Wildling", "types": ["normal"]}}
	}`)

	if _, err := svc.StartBattle(req); err != ErrInvalidParticipant {
		t.Fatalf("expected ErrInvalidParticipant, got %v", err)
	}
}

func TestEndBattle(t *testing.T) {
	repo := &mockRepo{}
	svc := testService(repo, 10, 10)

	if err := svc.EndBattle("fled"); err != ErrNoActiveBattle {
		t.Fatalf("expected ErrNoActiveBattle, got %v", err)
	}

	if _, err := svc.StartBattle(wildRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.EndBattle("fled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.battle.IsActive || repo.battle.CurrentPhase != game.PhaseBattleEnd {
		t.Fatalf("ending should deactivate and move to battle_end, got %+v", repo.battle)
	}
	if len(repo.encounters) != 1 || repo.encounters[0].EndedReason != "fled" {
		t.Fatalf("ending should record the encounter, got %+v", repo.encounters)
	}

	// The slot is free again.
	if _, err := svc.ActiveBattle(); err != ErrNoActiveBattle {
		t.Fatalf("expected ErrNoActiveBattle after end, got %v", err)
	}
}
