package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/crafterm/guitarzero/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// AtomHandler serves every recorded score as an Atom 1.0 feed.
func AtomHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var scores []models.Score
	if err := db.Preload("Song").Find(&scores).Error; err != nil {
		logger.Error("Failed to retrieve scores", zap.Error(err))
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	feed := models.AtomFeed{
		Xmlns: atomNamespace,
		Title: "Guitar Zero!",
		Links: []models.AtomLink{
			{Rel: "self", Type: "application/atom+xml", Href: "/atom.xml"},
			{Rel: "alternate", Type: "text/html", Href: "/"},
		},
		Generator: models.AtomGenerator{Version: "1.0", URI: "/"},
	}

	// updated mirrors the first row the store hands back, not the
	// newest; longstanding feed behaviour kept as-is.
	if len(scores) > 0 {
		feed.Updated = scores[0].CreatedAt.Format(time.RFC3339)
	}

	for _, score := range scores {
		feed.Entries = append(feed.Entries, models.AtomEntry{
			Base:      "/",
			Author:    models.AtomAuthor{Name: score.Name},
			Published: score.CreatedAt.Format(time.RFC3339),
			Link:      models.AtomLink{Rel: "alternate", Type: "text/html", Href: "/"},
			Title:     fmt.Sprintf("%d: New score registered for %s by %s", score.Score, score.Song.Name, score.Name),
			Content:   fmt.Sprintf("%s scored %d on song %s", score.Name, score.Score, score.Song.Name),
		})
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		logger.Error("Failed to render feed", zap.Error(err))
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	c.Data(http.StatusOK, "application/atom+xml; charset=utf-8", append([]byte(xml.Header), body...))
}
