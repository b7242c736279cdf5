package database

import (
	"time"

	"github.com/crafterm/guitarzero/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The schema grew in two steps: songs and scores shipped first, parties
// arrived later with songs.party_id defaulting to 1 so pre-existing
// songs stayed attached to the first party. Migrate replays both steps
// in order; each is additive and safe to re-run.

// songV1 is the songs table as it existed before parties.
type songV1 struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

func (songV1) TableName() string { return "songs" }

type scoreV1 struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	Score     int    `gorm:"not null"`
	SongID    uint   `gorm:"not null"`
	CreatedAt time.Time
}

func (scoreV1) TableName() string { return "scores" }

// partyV2 arrived in the second step, without associations so the
// migrator touches nothing but the parties table itself.
type partyV2 struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
}

func (partyV2) TableName() string { return "parties" }

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	// V1: base tables
	if err := db.AutoMigrate(&songV1{}, &scoreV1{}); err != nil {
		return err
	}

	// V2: parties table plus the owning column on songs
	if err := db.AutoMigrate(&partyV2{}); err != nil {
		return err
	}
	if !db.Migrator().HasColumn(&models.Song{}, "party_id") {
		if err := db.Migrator().AddColumn(&models.Song{}, "PartyID"); err != nil {
			return err
		}
	}

	logger.Info("schema migration complete")
	return nil
}
