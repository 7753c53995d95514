package database

import (
	"log"

	"github.com/inventario/models"
	"gorm.io/gorm"
)

// SeedData seeds sample products into an empty database. Inserts go
// through sp_insertar_producto so the seed exercises the same path the
// application uses.
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM inventario.productos").Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	productos := []models.Producto{
		{Nombre: "Leche entera 1L", Marca: "La Serenísima", Stock: 120, Precio: 1.50},
		{Nombre: "Arroz 1kg", Marca: "Gallo", Stock: 80, Precio: 2.10},
		{Nombre: "Aceite de girasol 900ml", Marca: "Cocinero", Stock: 45, Precio: 3.75},
		{Nombre: "Fideos spaghetti 500g", Marca: "Matarazzo", Stock: 95, Precio: 1.20},
		{Nombre: "Azúcar 1kg", Marca: "Ledesma", Stock: 60, Precio: 1.80},
		{Nombre: "Yerba mate 500g", Marca: "Taragüí", Stock: 70, Precio: 2.95},
		{Nombre: "Galletitas surtidas", Marca: "No informado", Stock: 150, Precio: 0.99},
		{Nombre: "Café molido 250g", Marca: "La Virginia", Stock: 35, Precio: 4.50},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, p := range productos {
			err := tx.Exec(
				"CALL inventario.sp_insertar_producto(?, ?, ?, ?)",
				p.Nombre, p.Marca, p.Stock, p.Precio,
			).Error
			if err != nil {
				return err
			}
		}
		log.Printf("Seeded %d products", len(productos))
		return nil
	})
}
