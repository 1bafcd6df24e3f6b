package storage

import (
	"time"

	"github.com/Dorely/beastbound/internal/game"
)

// EncounterStat is one row of the finished-encounter history.
type EncounterStat struct {
	BattleID     string    `json:"battle_id"`
	Kind         string    `json:"kind"`
	Turns        int       `json:"turns"`
	Participants int       `json:"participants"`
	EndedReason  string    `json:"ended_reason"`
	EndedAt      time.Time `json:"ended_at"`
}

// Repository is the engine's state-store collaborator. There is at most
// one active battle at a time; persistence happens after every mutating
// service call, and ending a battle clears the active slot by saving
// the state deactivated.
type Repository interface {
	// GetActiveBattle loads the active battle, or (nil, nil) when none.
	GetActiveBattle() (*game.BattleState, error)
	// HasActiveBattle reports whether an encounter is in progress.
	HasActiveBattle() (bool, error)
	// SaveBattle upserts the battle state keyed by its battle id.
	SaveBattle(s *game.BattleState) error
	// RecordEncounter appends the finished battle to the stats history.
	RecordEncounter(s *game.BattleState, reason string) error
	// GetRecentEncounters lists finished encounters, newest first.
	GetRecentEncounters(limit int) ([]EncounterStat, error)
}
