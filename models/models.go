package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Producto{},
		&Venta{},

		// 2. Detail tables
		&DetalleVenta{}, // depends on: Venta, Producto
	}
}
