package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/crafterm/guitarzero/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PartiesHandler renders the party list with its creation form.
func PartiesHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var parties []models.Party
	if err := db.Find(&parties).Error; err != nil {
		logger.Error("Failed to retrieve parties", zap.Error(err))
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	c.HTML(http.StatusOK, "parties.tmpl", gin.H{"Parties": parties})
}

// PartyCreateHandler find-or-creates a party by name and redirects to
// its score list. A blank name redirects straight back with no writes.
// Lookup and insert share one transaction so two submissions of the
// same name cannot race into duplicate rows.
func PartyCreateHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	name := strings.TrimSpace(c.PostForm("partyname"))
	if name == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var party models.Party
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).First(&party).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			party = models.Party{Name: name}
			return tx.Create(&party).Error
		}
		return err
	})
	if err != nil {
		logger.Error("Failed to create party", zap.String("name", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "500 - Internal server error")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/scores/%d", party.ID))
}
