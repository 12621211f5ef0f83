package main

import (
	"database/sql"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lycan-game/lycan-server/internal/httpserver"
	"github.com/lycan-game/lycan-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Round history is best effort: a broken database disables it but
	// never blocks gameplay.
	var db *sql.DB
	if dsn := getEnv("DB_PATH", "./data/lycan.db"); dsn != "off" {
		var err error
		if db, err = openDB(dsn); err != nil {
			log.Warn().Err(err).Msg("open history db, history disabled")
			db = nil
		} else if err = migrate(db); err != nil {
			log.Warn().Err(err).Msg("migrate history db, history disabled")
			db = nil
		}
	}

	opts := httpserver.Options{
		PregenRadius: envInt("PREGEN_RADIUS", 0),
		Seed:         int64(envInt("SEED", 0)),
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, opts)
	port := getEnv("PORT", "1337")
	log.Info().Str("port", port).Int("pregen_radius", opts.PregenRadius).Msg("starting lycan-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
