package main

import (
	"log"
	"os"

	"github.com/sharmaakash12-2000/Delhi-Metro/internal/api"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/config"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/database"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/loader"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/repository"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	params, err := config.LoadRoutingParams(cfg.ParamsPath)
	if err != nil {
		log.Fatal("Failed to load routing parameters: ", err)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Import reference CSVs when the data directory carries them; otherwise
	// serve whatever the database already holds
	if _, statErr := os.Stat(cfg.DataDir); statErr == nil {
		res, err := loader.LoadDir(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to load reference data: ", err)
		}
		for _, w := range res.Warnings {
			log.Printf("Reference data warning: %s", w)
		}
		if err := loader.Import(db, res); err != nil {
			log.Fatal("Failed to import reference data: ", err)
		}
		log.Printf("Imported %d stations and %d edges from %s", len(res.Stations), len(res.Edges), cfg.DataDir)
	} else {
		log.Printf("Data directory %s not found, using existing tables", cfg.DataDir)
	}

	routes := service.NewRouteService(
		repository.NewStationRepository(db),
		repository.NewEdgeRepository(db),
		params,
	)
	// A broken reference set must never serve queries
	if err := routes.Rebuild(); err != nil {
		log.Fatal("Failed to build graph: ", err)
	}
	stations := service.NewStationService(routes)

	// 初始化路由
	router := api.SetupRouter(cfg, routes, stations)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
