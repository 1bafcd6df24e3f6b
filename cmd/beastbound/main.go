package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/api"
	"github.com/Dorely/beastbound/internal/config"
	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/logging"
	"github.com/Dorely/beastbound/internal/rng"
	"github.com/Dorely/beastbound/internal/service"
	"github.com/Dorely/beastbound/internal/storage"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Failed to parse environment", err, nil)
	}

	cfg, err := config.LoadConfig(envCfg.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid beastbound configuration", err, logging.Fields{
			"config_path": envCfg.ConfigPath,
			"hint":        "create a beastbound_config.json with 'species_list' and 'move_list' arrays and an optional server.address",
		})
	}

	db, err := storage.OpenAndMigrate(envCfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	seed := envCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rng.NewSeeded(seed)

	if envCfg.APIToken == "" {
		logging.Warn("API token not configured, authentication disabled", nil)
	}

	svc := service.NewBattleService(repo, src, cfg.Moves, cfg.Species)
	battles := api.NewBattleHandler(svc)
	catalog := api.NewCatalogHandler(cfg.Species, cfg.Moves)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	apiRoutes.Use(api.TokenRequired(envCfg.APIToken))
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteSpecies, catalog.ListSpecies)
		apiRoutes.GET(constants.RouteMoves, catalog.ListMoves)
		apiRoutes.GET(constants.RouteTypeChart, catalog.TypeChart)
		apiRoutes.GET(constants.RouteEncounters, battles.ListEncounters)

		apiRoutes.POST(constants.RouteBattleStart, battles.StartBattle)
		apiRoutes.POST(constants.RouteBattleEnd, battles.EndBattle)
		apiRoutes.GET(constants.RouteBattleActive, battles.GetActiveBattle)
		apiRoutes.POST(constants.RouteParticipants, battles.AddParticipant)
		apiRoutes.DELETE(constants.RouteParticipant, battles.RemoveParticipant)
		apiRoutes.POST(constants.RouteVigor, battles.UpdateVigor)
		apiRoutes.POST(constants.RouteStatusEffects, battles.ApplyStatusEffect)
		apiRoutes.DELETE(constants.RouteStatusEffect, battles.RemoveStatusEffect)
		apiRoutes.POST(constants.RouteAction, battles.SubmitAction)
		apiRoutes.POST(constants.RoutePhaseAdvance, battles.AdvancePhase)
		apiRoutes.GET(constants.RouteVictory, battles.EvaluateVictory)
		apiRoutes.GET(constants.RouteLog, battles.GetLog)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "seed": seed})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
