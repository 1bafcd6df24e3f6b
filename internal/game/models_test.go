package game

import (
	"encoding/json"
	"testing"
)

func testCreature(id, name string, kind ParticipantKind, faction string, maxVigor int) *Participant {
	return NewCreatureParticipant(id, name, kind, faction, CreatureCombatant{
		Species: Species{
			Name:     name,
			Types:    []string{"normal"},
			Stats:    StatBlock{Power: 3, Mind: 2, Defense: 1, Spirit: 1, Agility: 2},
			MaxVigor: maxVigor,
		},
	})
}

func TestNewCreatureParticipant_VigorDefaults(t *testing.T) {
	p := testCreature("c1", "Sparky", KindPlayerCreature, "players", 50)
	c := p.Creature()
	if c == nil {
		t.Fatalf("expected a creature payload")
	}
	if c.MaxVigor != 50 || c.CurrentVigor != 50 {
		t.Fatalf("expected vigor 50/50, got %d/%d", c.CurrentVigor, c.MaxVigor)
	}
	if p.Handler() != nil {
		t.Fatalf("creature participant must not expose a handler payload")
	}

	over := NewCreatureParticipant("c2", "Over", KindPlayerCreature, "players", CreatureCombatant{
		Species:      Species{Name: "X", MaxVigor: 30},
		CurrentVigor: 99,
	})
	if over.Creature().CurrentVigor != 30 {
		t.Fatalf("current vigor should clamp to max, got %d", over.Creature().CurrentVigor)
	}
}

func TestApplyDamage_ClampsAndDefeatsOnce(t *testing.T) {
	p := testCreature("c1", "Sparky", KindPlayerCreature, "players", 10)

	removed, defeated := p.ApplyDamage(4)
	if removed != 4 || defeated {
		t.Fatalf("expected 4 removed and no defeat, got %d/%v", removed, defeated)
	}

	removed, defeated = p.ApplyDamage(100)
	if removed != 6 {
		t.Fatalf("damage should clamp at remaining vigor, got %d", removed)
	}
	if !defeated || !p.IsDefeated {
		t.Fatalf("reaching zero vigor should defeat the participant")
	}

	// A second lethal hit removes nothing new and never re-reports defeat.
	removed, defeated = p.ApplyDamage(5)
	if removed != 0 || defeated {
		t.Fatalf("expected no-op on defeated target, got %d/%v", removed, defeated)
	}
}

func TestSetVigor_ClampAndOneWayDefeat(t *testing.T) {
	p := testCreature("c1", "Sparky", KindPlayerCreature, "players", 20)

	old, now, err := p.SetVigor(-5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if old != 20 || now != 0 || !p.IsDefeated {
		t.Fatalf("expected 20 -> 0 with defeat, got %d -> %d defeated=%v", old, now, p.IsDefeated)
	}

	// Healing back above zero does not revert defeat.
	_, now, err = p.SetVigor(35)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if now != 20 {
		t.Fatalf("vigor should clamp to max 20, got %d", now)
	}
	if !p.IsDefeated {
		t.Fatalf("defeat must be one-way")
	}

	h := NewHandlerParticipant("h1", "Rival", KindEnemyHandler, "enemies", HandlerCombatant{Name: "Rival"})
	if _, _, err := h.SetVigor(10); err != ErrNoVigorPool {
		t.Fatalf("expected ErrNoVigorPool for handler, got %v", err)
	}
}

func TestAddParticipant_SymmetricRelationships(t *testing.T) {
	s := &BattleState{}
	ally1 := testCreature("a1", "A1", KindPlayerCreature, "players", 10)
	ally2 := testCreature("a2", "A2", KindPlayerCreature, "players", 10)
	enemy := testCreature("e1", "E1", KindEnemyCreature, "enemies", 10)

	s.AddParticipant(ally1)
	s.AddParticipant(ally2)
	s.AddParticipant(enemy)

	if ally1.Relationships["a2"] != StanceAllied || ally2.Relationships["a1"] != StanceAllied {
		t.Fatalf("same-faction participants should be allied both ways")
	}
	if ally1.Relationships["e1"] != StanceHostile || enemy.Relationships["a1"] != StanceHostile {
		t.Fatalf("cross-faction participants should be hostile both ways")
	}

	if !s.RemoveParticipant("e1") {
		t.Fatalf("expected removal of e1")
	}
	if _, ok := ally1.Relationships["e1"]; ok {
		t.Fatalf("removal should scrub relationship entries")
	}
	if s.RemoveParticipant("e1") {
		t.Fatalf("removing an absent participant should report false")
	}
}

func TestStatusEffects_UniqueByName(t *testing.T) {
	p := testCreature("c1", "Sparky", KindPlayerCreature, "players", 10)

	p.AddStatusEffect(StatusEffect{Name: "burn", Duration: 3, Severity: 1})
	p.AddStatusEffect(StatusEffect{Name: "burn", Duration: 5, Severity: 2})

	effects := p.Creature().StatusEffects
	if len(effects) != 1 {
		t.Fatalf("effects must be unique by name, got %d entries", len(effects))
	}
	if effects[0].Duration != 5 || effects[0].Severity != 2 {
		t.Fatalf("re-applying should replace the existing effect, got %+v", effects[0])
	}

	if !p.RemoveStatusEffect("burn") {
		t.Fatalf("expected removal of burn")
	}
	if p.RemoveStatusEffect("burn") {
		t.Fatalf("removing an absent effect should report false")
	}

	h := NewHandlerParticipant("h1", "Rival", KindEnemyHandler, "enemies", HandlerCombatant{Name: "Rival"})
	if h.AddStatusEffect(StatusEffect{Name: "burn"}) {
		t.Fatalf("handlers do not carry status effects")
	}
}

func TestParticipantJSON_RoundTrip(t *testing.T) {
	p := testCreature("c1", "Sparky", KindPlayerCreature, "players", 40)
	p.Initiative = 33
	p.AddStatusEffect(StatusEffect{Name: "burn", Duration: 2})

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Participant
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "c1" || got.Initiative != 33 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	c := got.Creature()
	if c == nil || c.CurrentVigor != 40 || len(c.StatusEffects) != 1 {
		t.Fatalf("round trip lost creature payload: %+v", c)
	}

	h := NewHandlerParticipant("h1", "Rival", KindEnemyHandler, "enemies", HandlerCombatant{Name: "Rival", CanEscape: true})
	b, err = json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal handler: %v", err)
	}
	var gotH Participant
	if err := json.Unmarshal(b, &gotH); err != nil {
		t.Fatalf("unmarshal handler: %v", err)
	}
	if gotH.Handler() == nil || !gotH.Handler().CanEscape {
		t.Fatalf("round trip lost handler payload")
	}
	if gotH.Creature() != nil {
		t.Fatalf("handler participant must not expose a creature payload")
	}
}

func TestParticipantJSON_RejectsZeroOrBothPayloads(t *testing.T) {
	var p Participant
	if err := json.Unmarshal([]byte(`{"id":"x","kind":"player_creature"}`), &p); err == nil {
		t.Fatalf("expected error for participant with no payload")
	}
	both := `{"id":"x","kind":"player_creature","creature":{"species":{"name":"A"}},"handler":{"name":"B"}}`
	if err := json.Unmarshal([]byte(both), &p); err == nil {
		t.Fatalf("expected error for participant with both payloads")
	}
}

func TestLogTail(t *testing.T) {
	s := &BattleState{CurrentTurn: 2, CurrentPhase: PhaseResolveActions}
	s.AppendLog("a1", "attack:Tackle", []string{"e1"}, "hit")
	s.AppendLog("e1", "attack:Bite", []string{"a1"}, "miss")
	s.AppendLog("a1", "attack:Tackle", []string{"e1"}, "hit again")

	all := s.LogTail(0, "")
	if len(all) != 3 {
		t.Fatalf("expected full log, got %d entries", len(all))
	}
	if all[0].Turn != 2 || all[0].Phase != PhaseResolveActions {
		t.Fatalf("entries should be stamped with turn and phase, got %+v", all[0])
	}

	tail := s.LogTail(2, "")
	if len(tail) != 2 || tail[0].Action != "attack:Bite" {
		t.Fatalf("expected the 2 trailing entries, got %+v", tail)
	}

	byActor := s.LogTail(0, "a1")
	if len(byActor) != 2 {
		t.Fatalf("expected 2 entries for a1, got %d", len(byActor))
	}

	// The returned slice is a copy; mutating it must not touch the log.
	byActor[0].Result = "tampered"
	if s.Log[0].Result == "tampered" {
		t.Fatalf("LogTail must return a copy")
	}
}
