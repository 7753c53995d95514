package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/inventario/config"
	"github.com/inventario/database"
)

func main() {
	var help = flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🌱 Starting Database Seed Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("❌ Connection check failed: %v", err)
	}

	if err := database.SeedData(database.DB); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}
	fmt.Println("✅ Seed completed successfully")
}

func showHelp() {
	log.Println(`
Database Seed Tool

Seeds sample products through sp_insertar_producto. Skips seeding when
the productos table already has rows.

Usage:
  go run cmd/seed/main.go
`)
}
