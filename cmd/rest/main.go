package main

import (
	"context"
	"log"

	"github.com/LuisRodriguez27/notex/internal/bootstrap"
	"github.com/LuisRodriguez27/notex/internal/config"
	"github.com/LuisRodriguez27/notex/internal/model"
	"github.com/LuisRodriguez27/notex/internal/server"
	"github.com/LuisRodriguez27/notex/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Data.DatabasePath)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := database.Migrate(gormDB, model.All()...); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()
	defer container.Bus.Close()

	// 4. Telemetry consumer: drain core events into the log
	go func() {
		evts, err := container.Bus.Subscribe(context.Background())
		if err != nil {
			log.Printf("Background telemetry consumer error: %v", err)
			return
		}
		for evt := range evts {
			container.Logger.Info("Telemetry", evt.Type, evt.Data)
		}
	}()

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
