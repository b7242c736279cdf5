package models

import (
	"time"
)

// Party model definition. A named group posting scores together.
type Party struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
	Songs     []Song
}
