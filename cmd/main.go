package main

import (
	"log"

	"github.com/eoreilly0906/Spoon-API/config"
	"github.com/eoreilly0906/Spoon-API/routes"
	"github.com/eoreilly0906/Spoon-API/services"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	if cfg.SeedOnStart {
		if err := services.SeedUsers(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	r := routes.SetupRouter(cfg, db)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
