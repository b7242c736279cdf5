package utils

import (
	"github.com/crafterm/guitarzero/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CronReporter logs table totals once a day. The data set is
// append-only so there is nothing to clean up, but the counts make a
// cheap health signal in the logs.
func CronReporter(db *gorm.DB, logger *zap.Logger) {
	c := cron.New()

	c.AddFunc("@daily", func() {
		var parties, songs, scores int64
		db.Model(&models.Party{}).Count(&parties)
		db.Model(&models.Song{}).Count(&songs)
		db.Model(&models.Score{}).Count(&scores)

		logger.Info("daily totals",
			zap.Int64("parties", parties),
			zap.Int64("songs", songs),
			zap.Int64("scores", scores),
		)
	})

	c.Start()
}
