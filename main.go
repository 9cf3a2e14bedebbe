package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"distlab/adapters/postgres"
	"distlab/internal/config"
	"distlab/internal/errors"
	"distlab/internal/rng"
	"distlab/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewResultRepository(db)
	server := ui.NewServer(cfg, repo, rng.New)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// initDatabase connects to PostgreSQL and ensures the schema exists
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	if err := postgres.InitSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
