package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/crafterm/guitarzero/database"
	"github.com/crafterm/guitarzero/handlers"
	"github.com/crafterm/guitarzero/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	logger, err := utils.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := database.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.InitPostgreSQL(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize PostgreSQL", zap.Error(err))
	}

	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Sessions are bookkeeping only, so a missing Redis just means no
	// session tracking.
	rdb, err := database.InitRedis(logger)
	if err != nil {
		logger.Warn("Redis unavailable, session tracking disabled", zap.Error(err))
	}

	go utils.CronReporter(db, logger)

	router := gin.Default()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))
	if rdb != nil {
		router.Use(utils.SessionTracker(rdb, logger))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.LoadHTMLGlob("templates/*.tmpl")

	router.GET("/", func(c *gin.Context) {
		handlers.PartiesHandler(c, db, logger)
	})
	router.POST("/", func(c *gin.Context) {
		handlers.PartyCreateHandler(c, db, logger)
	})
	router.GET("/scores/:id", func(c *gin.Context) {
		handlers.ScoresHandler(c, db, logger)
	})
	router.POST("/scores/:id", func(c *gin.Context) {
		handlers.ScoreCreateHandler(c, db, logger)
	})
	router.GET("/static/*filepath", func(c *gin.Context) {
		handlers.StaticHandler(c, logger)
	})
	router.GET("/atom.xml", func(c *gin.Context) {
		handlers.AtomHandler(c, db, logger)
	})

	// Default port is ":8080"; set PORT to override.
	router.Run()
}
