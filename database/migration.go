package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/inventario/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS inventario").Error; err != nil {
		log.Printf("Warning: Could not create schema: %v", err)
	}

	if err := db.Exec("SET search_path TO inventario, public").Error; err != nil {
		return fmt.Errorf("failed to set search path: %w", err)
	}

	// Create tables in dependency order
	log.Println("Creating tables...")
	migrator := db.Migrator()

	for _, model := range models.AllModels() {
		tableName := migrator.CurrentDatabase()
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				log.Printf("  ⚠ Warning: Could not create table %s: %v", tableName, err)
				continue
			}
			log.Printf("  ✓ Created table: %s", tableName)
		} else {
			log.Printf("  ✓ Table already exists: %s", tableName)
		}
	}

	log.Println("Creating foreign key constraints...")
	if err := CreateForeignKeys(db); err != nil {
		log.Printf("Warning: Some foreign keys could not be created: %v", err)
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("Creating stored procedures...")
	if err := CreateStoredProcedures(db); err != nil {
		return fmt.Errorf("failed to create stored procedures: %w", err)
	}

	log.Println("Creating database triggers...")
	if err := CreateTriggers(db); err != nil {
		return fmt.Errorf("failed to create triggers: %w", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CheckConnection verifies the database connection and schema
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var schemaExists bool
	err = db.Raw("SELECT EXISTS(SELECT 1 FROM information_schema.schemata WHERE schema_name = 'inventario')").Scan(&schemaExists).Error
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	if !schemaExists {
		log.Println("Warning: 'inventario' schema does not exist. Run with -migrate to create it.")
		if err := db.Exec("CREATE SCHEMA IF NOT EXISTS inventario").Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		log.Println("Created 'inventario' schema")
	}

	return nil
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		// Deleting a referenced product or sale must fail, so no ON DELETE action.
		{"detalle_venta", "fk_detalle_venta_venta", "id_venta", "ventas", "id_venta"},
		{"detalle_venta", "fk_detalle_venta_producto", "id_producto", "productos", "id_producto"},
	}

	for _, fk := range foreignKeys {
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_schema = 'inventario'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			log.Printf("  ✓ Foreign key already exists: %s", fk.name)
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE inventario.%s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES inventario.%s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)

		if err := db.Exec(query).Error; err != nil {
			log.Printf("  ⚠ Failed to create foreign key %s: %v", fk.name, err)
		} else {
			log.Printf("  ✓ Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_ventas_fecha", "CREATE INDEX IF NOT EXISTS idx_ventas_fecha ON inventario.ventas(fecha)"},
		{"idx_detalle_venta_venta", "CREATE INDEX IF NOT EXISTS idx_detalle_venta_venta ON inventario.detalle_venta(id_venta)"},
		{"idx_detalle_venta_producto", "CREATE INDEX IF NOT EXISTS idx_detalle_venta_producto ON inventario.detalle_venta(id_producto)"},
	}

	successCount := 0
	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("  ✓ Created index: %s", idx.name)
			successCount++
		}
	}

	if successCount > 0 {
		log.Printf("Successfully created %d indexes", successCount)
	}

	return nil
}

// CreateStoredProcedures creates the stored routines the services call
func CreateStoredProcedures(db *gorm.DB) error {
	routines := []struct {
		name string
		sql  string
	}{
		{"sp_insertar_producto", procInsertarProducto},
		{"sp_actualizar_producto", procActualizarProducto},
		{"sp_eliminar_producto", procEliminarProducto},
		{"sp_insertar_venta", funcInsertarVenta},
		{"sp_insertar_detalle_venta", procInsertarDetalleVenta},
	}

	for _, r := range routines {
		if err := db.Exec(r.sql).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", r.name, err)
		}
		log.Printf("  ✓ Created routine: %s", r.name)
	}

	return nil
}

// CreateTriggers creates the detalle_venta triggers that enforce stock
// sufficiency and maintain subtotal and sale total
func CreateTriggers(db *gorm.DB) error {
	statements := []struct {
		name string
		sql  string
	}{
		{"trg_detalle_venta_before", funcDetalleVentaBefore},
		{"trg_detalle_venta_after", funcDetalleVentaAfter},
		{"detalle_venta_before_insert", triggerDetalleVentaBefore},
		{"detalle_venta_after_insert", triggerDetalleVentaAfter},
	}

	for _, s := range statements {
		if err := db.Exec(s.sql).Error; err != nil {
			// DROP TRIGGER IF EXISTS inside the statement makes re-runs safe;
			// anything else is a real failure.
			if strings.Contains(err.Error(), "already exists") {
				log.Printf("  ✓ Trigger already exists: %s", s.name)
				continue
			}
			return fmt.Errorf("failed to create %s: %w", s.name, err)
		}
		log.Printf("  ✓ Created trigger object: %s", s.name)
	}

	return nil
}
