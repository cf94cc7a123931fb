package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/c00p75/fitness-league-sub000/internal/database"
	"github.com/c00p75/fitness-league-sub000/internal/logging"
)

type migrateConfig struct {
	DBUrl         string `envconfig:"DB_URL" required:"true"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"console"`
}

func main() {
	envLoaded := godotenv.Load() == nil

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fatal := logging.New("info", "console", nil)
		fatal.Fatal().Err(err).Msg("Invalid environment")
	}
	logger := logging.Component(logging.New(cfg.LogLevel, cfg.LogFormat, nil), "migrate")
	if !envLoaded {
		logger.Debug().Msg("No .env file found")
	}

	dir := cfg.MigrationsDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			logger.Fatal().Err(err).Msg("Resolve working directory")
		}
		if dir, err = database.FindMigrationsDir(cwd); err != nil {
			logger.Fatal().Err(err).Msg("Locate migrations")
		}
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "up" && cmd != "down" {
		logger.Fatal().Str("command", cmd).Msg("Usage: migrate [up|down]")
	}

	if err := database.Migrate(cfg.DBUrl, dir, cmd == "up"); err != nil {
		logger.Fatal().Err(err).Str("dir", dir).Msgf("Migration %s failed", cmd)
	}
	logger.Info().Str("dir", dir).Msgf("Migration %s successful", cmd)
}
