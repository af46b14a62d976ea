package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/surgechecklist/internal/api"
	"github.com/youruser/surgechecklist/internal/cards"
	"github.com/youruser/surgechecklist/internal/checklist"
	"github.com/youruser/surgechecklist/internal/config"
	"github.com/youruser/surgechecklist/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}
	log := logger.New(os.Stderr, cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	svc, err := checklist.Open(cards.NewStore(cfg.DataFile), log)
	if err != nil {
		log.Error("open collection", "path", cfg.DataFile, "err", err)
		os.Exit(1)
	}

	r := api.NewRouter(api.NewHandler(svc, cfg.Currency, cfg.PublicURL), log)
	log.Info("starting server", "url", "http://localhost"+cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
