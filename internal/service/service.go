package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/rng"
	"github.com/Dorely/beastbound/internal/storage"
)

// Sentinel errors returned by the battle service. The API layer maps
// them onto HTTP statuses: validation errors to 400, not-found to 404
// and state conflicts to 409.
var (
	ErrBattleAlreadyActive  = errors.New("a battle is already active")
	ErrNoActiveBattle       = errors.New("no active battle")
	ErrInvalidBattleKind    = errors.New("invalid battle kind")
	ErrNoParticipants       = errors.New("battle requires at least one participant")
	ErrDuplicateParticipant = errors.New("participant id already present")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidParticipant   = errors.New("creature participant requires max vigor above zero")
	ErrActorDefeated        = errors.New("actor is defeated")
	ErrInvalidAction        = errors.New("invalid action")
	ErrUnknownMove          = errors.New("unknown move")
	ErrInvalidStatusEffect  = errors.New("status effect requires a name")
	ErrNoVigorPool          = errors.New("participant has no vigor pool")
)

// BattleService is the engine's public operation surface. It owns no
// state of its own: every operation loads the active battle from the
// repository, mutates it in memory through the engine and persists it
// back. Callers must serialize operations against a given battle; the
// service performs no internal locking.
type BattleService struct {
	repo    storage.Repository
	src     rng.Source
	moves   map[string]engine.MoveSpec
	species map[string]game.Species
	now     func() time.Time
}

// NewBattleService wires the service with its collaborators. The move
// and species catalogs come from the ruleset configuration and act as
// the ruleset hook: attacks may name a catalog move instead of carrying
// full metadata, and creature payloads may reference a species by name.
func NewBattleService(repo storage.Repository, src rng.Source, moves []engine.MoveSpec, species []game.Species) *BattleService {
	ms := make(map[string]engine.MoveSpec, len(moves))
	for _, m := range moves {
		ms[strings.ToLower(m.Name)] = m
	}
	sp := make(map[string]game.Species, len(species))
	for _, s := range species {
		sp[strings.ToLower(s.Name)] = s
	}
	return &BattleService{
		repo:    repo,
		src:     src,
		moves:   ms,
		species: sp,
		now:     time.Now,
	}
}

// activeBattle loads the current battle or fails with ErrNoActiveBattle.
func (s *BattleService) activeBattle() (*game.BattleState, error) {
	st, err := s.repo.GetActiveBattle()
	if err != nil {
		return nil, err
	}
	if st == nil || !st.IsActive {
		return nil, ErrNoActiveBattle
	}
	return st, nil
}

// ActiveBattle returns the current battle state for read access.
func (s *BattleService) ActiveBattle() (*game.BattleState, error) {
	return s.activeBattle()
}

// RecentEncounters lists the most recently finished encounters.
func (s *BattleService) RecentEncounters(limit int) ([]storage.EncounterStat, error) {
	return s.repo.GetRecentEncounters(limit)
}
