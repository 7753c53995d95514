package services

import (
	"strings"

	"github.com/inventario/models"
	"gorm.io/gorm"
)

// MarcaPorDefecto is stored when a product is registered without a
// brand.
const MarcaPorDefecto = "No informado"

// InventoryService exposes product CRUD. Writes go through stored
// procedures; reads are direct queries.
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates an inventory service bound to a database
// session.
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// InsertarProducto registers a new product via sp_insertar_producto.
func (s *InventoryService) InsertarProducto(nombre, marca string, stock int, precio float64) error {
	const op = "insertar producto"

	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return validationError(op, "el nombre es obligatorio")
	}
	if stock < 0 {
		return validationError(op, "el stock no puede ser negativo")
	}
	if precio < 0 {
		return validationError(op, "el precio no puede ser negativo")
	}
	marca = normalizarMarca(marca)

	err := s.db.Exec(
		"CALL inventario.sp_insertar_producto(?, ?, ?, ?)",
		nombre, marca, stock, precio,
	).Error
	if err != nil {
		return wrapDB(op, err)
	}
	return nil
}

// ActualizarProducto updates an existing product via
// sp_actualizar_producto. The procedure raises when the id does not
// exist.
func (s *InventoryService) ActualizarProducto(id uint, nombre, marca string, stock int, precio float64) error {
	const op = "actualizar producto"

	if id == 0 {
		return validationError(op, "id de producto inválido")
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return validationError(op, "el nombre es obligatorio")
	}
	if stock < 0 {
		return validationError(op, "el stock no puede ser negativo")
	}
	if precio < 0 {
		return validationError(op, "el precio no puede ser negativo")
	}
	marca = normalizarMarca(marca)

	err := s.db.Exec(
		"CALL inventario.sp_actualizar_producto(?, ?, ?, ?, ?)",
		id, nombre, marca, stock, precio,
	).Error
	if err != nil {
		return wrapDB(op, err)
	}
	return nil
}

// EliminarProducto removes a product via sp_eliminar_producto. The
// database rejects the call when sale lines still reference the
// product.
func (s *InventoryService) EliminarProducto(id uint) error {
	const op = "eliminar producto"

	if id == 0 {
		return validationError(op, "id de producto inválido")
	}

	err := s.db.Exec("CALL inventario.sp_eliminar_producto(?)", id).Error
	if err != nil {
		return wrapDB(op, err)
	}
	return nil
}

// ListarProductos returns all products in table order.
func (s *InventoryService) ListarProductos() ([]models.Producto, error) {
	const op = "listar productos"

	var productos []models.Producto
	err := s.db.Raw(`
		SELECT id_producto, nombre, marca, stock, precio
		FROM inventario.productos
		ORDER BY id_producto
	`).Scan(&productos).Error
	if err != nil {
		return nil, wrapDB(op, err)
	}
	return productos, nil
}

// ObtenerProducto returns a single product by id.
func (s *InventoryService) ObtenerProducto(id uint) (models.Producto, error) {
	const op = "obtener producto"

	var producto models.Producto
	if id == 0 {
		return producto, validationError(op, "id de producto inválido")
	}

	tx := s.db.Raw(`
		SELECT id_producto, nombre, marca, stock, precio
		FROM inventario.productos
		WHERE id_producto = ?
	`, id).Scan(&producto)
	if tx.Error != nil {
		return producto, wrapDB(op, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return producto, wrapDB(op, gorm.ErrRecordNotFound)
	}
	return producto, nil
}

func normalizarMarca(marca string) string {
	marca = strings.TrimSpace(marca)
	if marca == "" {
		return MarcaPorDefecto
	}
	return marca
}
