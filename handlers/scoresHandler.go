package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/crafterm/guitarzero/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fetchParty resolves the :id path parameter to a party, answering 404
// on the caller's behalf when it does not exist.
func fetchParty(c *gin.Context, db *gorm.DB, logger *zap.Logger) (models.Party, bool) {
	var party models.Party

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "404 - Party not found")
		return party, false
	}

	if err := db.First(&party, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "404 - Party not found")
		} else {
			logger.Error("Failed to retrieve party", zap.Uint64("id", id), zap.Error(err))
			c.String(http.StatusInternalServerError, "500 - Internal server error")
		}
		return party, false
	}

	return party, true
}

// ScoresHandler renders a party's songs with their scores, best first.
func ScoresHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	party, ok := fetchParty(c, db, logger)
	if !ok {
		return
	}

	var songs []models.Song
	err := db.Where("party_id = ?", party.ID).
		Preload("Scores", func(db *gorm.DB) *gorm.DB {
			// ties keep insertion order
			return db.Order("score DESC, id")
		}).
		Find(&songs).Error
	if err != nil {
		logger.Error("Failed to retrieve songs", zap.Uint("partyID", party.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	c.HTML(http.StatusOK, "scores.tmpl", gin.H{
		"Party": party,
		"Songs": songs,
	})
}

// ScoreCreateHandler appends one score under the posted song,
// find-or-creating the song within the party first. Blank or
// non-numeric input redirects back with no writes.
func ScoreCreateHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	party, ok := fetchParty(c, db, logger)
	if !ok {
		return
	}
	back := fmt.Sprintf("/scores/%d", party.ID)

	playerName := strings.TrimSpace(c.PostForm("name"))
	songName := strings.TrimSpace(c.PostForm("song"))
	scoreValue, err := strconv.Atoi(strings.TrimSpace(c.PostForm("score")))
	if playerName == "" || songName == "" || err != nil {
		c.Redirect(http.StatusFound, back)
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var song models.Song
		err := tx.Where("name = ? AND party_id = ?", songName, party.ID).First(&song).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			song = models.Song{Name: songName, PartyID: party.ID}
			err = tx.Create(&song).Error
		}
		if err != nil {
			return err
		}

		return tx.Create(&models.Score{
			Name:   playerName,
			Score:  scoreValue,
			SongID: song.ID,
		}).Error
	})
	if err != nil {
		logger.Error("Failed to create score",
			zap.Uint("partyID", party.ID),
			zap.String("song", songName),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	c.Redirect(http.StatusFound, back)
}
