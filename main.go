// @title SkillSync API
// @version 1.0
// @description Backend for the SkillSync learning platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"
	"skillsync_backend/internal/app"
	"skillsync_backend/internal/config"
	"skillsync_backend/pkg/configwatcher"
	"skillsync_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(filepath.Join(*configDir, "config.yaml"), cfg, func(newCfg interface{}) {
		if reloaded, ok := newCfg.(*config.Config); ok {
			application.ReloadConfig(reloaded)
		}
	})

	application.Run()
}
