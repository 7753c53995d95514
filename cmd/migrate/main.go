package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/inventario/config"
	"github.com/inventario/database"
)

func main() {
	// Command line flags
	var (
		drop   = flag.Bool("drop", false, "Drop all tables before migration")
		schema = flag.Bool("schema", false, "Create schema only (no migration)")
		help   = flag.Bool("help", false, "Show help")
	)

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

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("⚠️  Dropping all objects in inventario schema...")
		if err := dropAll(); err != nil {
			log.Fatalf("❌ Failed to drop objects: %v", err)
		}
		fmt.Println("✅ Schema objects dropped")
	}

	// Create schema only if requested
	if *schema {
		fmt.Println("📁 Creating schema only...")
		if err := database.DB.Exec("CREATE SCHEMA IF NOT EXISTS inventario").Error; err != nil {
			log.Fatalf("❌ Failed to create schema: %v", err)
		}
		fmt.Println("✅ Schema created successfully")
		return
	}

	// Run AutoMigrate
	fmt.Println("🔧 Running migration...")
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migration completed successfully")
}

// dropAll removes the inventario schema with everything in it: tables,
// stored procedures and triggers.
func dropAll() error {
	return database.DB.Exec("DROP SCHEMA IF EXISTS inventario CASCADE").Error
}

func showHelp() {
	log.Println(`
Database Migration Tool

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop    Drop the inventario schema (tables, procedures, triggers) first
  -schema  Create the schema only, without tables
  -help    Show this help message
`)
}
