package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/crafterm/guitarzero/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named in-memory DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")

	router.GET("/", func(c *gin.Context) {
		PartiesHandler(c, db, logger)
	})
	router.POST("/", func(c *gin.Context) {
		PartyCreateHandler(c, db, logger)
	})
	router.GET("/scores/:id", func(c *gin.Context) {
		ScoresHandler(c, db, logger)
	})
	router.POST("/scores/:id", func(c *gin.Context) {
		ScoreCreateHandler(c, db, logger)
	})
	router.GET("/static/*filepath", func(c *gin.Context) {
		StaticHandler(c, logger)
	})
	router.GET("/atom.xml", func(c *gin.Context) {
		AtomHandler(c, db, logger)
	})

	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func doPost(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}
