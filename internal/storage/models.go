package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/Dorely/beastbound/internal/game"
)

// battleRecord is the persisted shape of one encounter. The full battle
// state is stored as a JSON document: the state is a deep aggregate
// (tagged-union participants, nested log) that is always loaded and
// saved as a whole, so a relational breakdown would buy nothing.
type battleRecord struct {
	gorm.Model
	BattleID string           `gorm:"uniqueIndex"`
	Active   bool             `gorm:"index"`
	Kind     string           `gorm:"size:32"`
	State    game.BattleState `gorm:"serializer:json;type:text"`
}

func (battleRecord) TableName() string { return "battle_records" }

// encounterStat is the persisted history of finished encounters.
type encounterStat struct {
	gorm.Model
	BattleID     string `gorm:"index"`
	Kind         string `gorm:"size:32"`
	Turns        int
	Participants int
	EndedReason  string `gorm:"size:256"`
	EndedAt      time.Time
}

func (encounterStat) TableName() string { return "encounter_stats" }
