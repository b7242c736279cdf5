package models

import (
	"time"
)

// Score model definition. One player's result for a song, never
// updated after the insert.
type Score struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	Score     int    `gorm:"not null"`
	SongID    uint   `gorm:"not null"`
	CreatedAt time.Time
	Song      Song
}
