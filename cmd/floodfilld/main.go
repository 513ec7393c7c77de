// Command floodfilld serves flood-fill grids over HTTP.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/floodgrid/api"
	gridapi "github.com/katalvlaran/floodgrid/api/grid"
	"github.com/katalvlaran/floodgrid/config"
	"github.com/katalvlaran/floodgrid/session"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("failed to load configuration")
		os.Exit(1)
	}
	log.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	store := session.NewStore(session.Config{
		GridSize:     cfg.GridSize,
		RandomTrials: cfg.RandomTrials,
		MaxSessions:  cfg.MaxSessions,
		Logger:       log,
	})
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		Controllers: []api.Controller{gridapi.NewGridController(store, log)},
		Logger:      log,
	})

	if err := router.Run(); err != nil {
		log.WithError(err).Error("http server stopped")
		os.Exit(1)
	}
}
