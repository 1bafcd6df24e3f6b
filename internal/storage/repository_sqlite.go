package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dorely/beastbound/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps the GORM handle in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetActiveBattle() (*game.BattleState, error) {
	var rec battleRecord
	err := r.db.Where("active = ?", true).Order("created_at desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	st := rec.State
	return &st, nil
}

func (r *sqliteRepository) HasActiveBattle() (bool, error) {
	var count int64
	if err := r.db.Model(&battleRecord{}).Where("active = ?", true).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sqliteRepository) SaveBattle(s *game.BattleState) error {
	rec := battleRecord{
		BattleID: s.ID,
		Active:   s.IsActive,
		Kind:     string(s.Kind),
		State:    *s,
	}
	// Upsert keyed by battle id so repeated saves of the same encounter
	// update one row.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "battle_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active", "kind", "state", "updated_at"}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) RecordEncounter(s *game.BattleState, reason string) error {
	rec := encounterStat{
		BattleID:     s.ID,
		Kind:         string(s.Kind),
		Turns:        s.CurrentTurn,
		Participants: len(s.Participants),
		EndedReason:  reason,
		EndedAt:      time.Now().UTC(),
	}
	return r.db.Create(&rec).Error
}

func (r *sqliteRepository) GetRecentEncounters(limit int) ([]EncounterStat, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []encounterStat
	if err := r.db.Order("ended_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]EncounterStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, EncounterStat{
			BattleID:     row.BattleID,
			Kind:         row.Kind,
			Turns:        row.Turns,
			Participants: row.Participants,
			EndedReason:  row.EndedReason,
			EndedAt:      row.EndedAt,
		})
	}
	return out, nil
}
