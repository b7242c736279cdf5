package models

import (
	"time"
)

// Song model definition. Each song belongs to one party; the default
// party id 1 keeps rows created before parties existed attached.
type Song struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	PartyID   uint   `gorm:"default:1"`
	CreatedAt time.Time
	Scores    []Score
}
