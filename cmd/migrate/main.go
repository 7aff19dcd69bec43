package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pratik-mahalle/usuarios-api/internal/config"
	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/migrations"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Connect to database
	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Printf("Connected to %s database successfully\n", cfg.Database.Driver)

	fsys, err := migrations.ForDriver(cfg.Database.Driver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load migrations: %v\n", err)
		os.Exit(1)
	}

	applied, err := postgres.RunMigrations(ctx, db, postgres.DialectFor(cfg.Database.Driver), fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	if len(applied) == 0 {
		fmt.Println("No pending migrations")
		return
	}

	for _, name := range applied {
		fmt.Printf("✓ Migration %s completed successfully\n", name)
	}
	fmt.Println("\nAll migrations completed successfully!")
}
