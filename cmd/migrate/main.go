package main

import (
	"github.com/ashish6109/ludo-backend/internal/config"
	"github.com/ashish6109/ludo-backend/internal/db"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}
