package models

import "time"

// Venta represents the ventas table. The total column is maintained by
// a database trigger as line items are inserted; the client never
// writes it directly.
type Venta struct {
	IDVenta uint      `gorm:"primaryKey;column:id_venta" json:"id_venta"`
	Fecha   time.Time `gorm:"type:date;not null" json:"fecha"`
	Total   float64   `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
}

// TableName specifies the table name for Venta
func (Venta) TableName() string {
	return "ventas"
}

// DetalleVenta represents the detalle_venta table. There is no unit
// price column: the insert trigger resolves the current product price,
// computes the subtotal and decrements stock, rejecting the row when
// the requested quantity exceeds the available stock.
type DetalleVenta struct {
	IDDetalle  uint    `gorm:"primaryKey;column:id_detalle" json:"id_detalle"`
	IDVenta    uint    `gorm:"column:id_venta;not null" json:"id_venta"`
	IDProducto uint    `gorm:"column:id_producto;not null" json:"id_producto"`
	Cantidad   int     `gorm:"not null;check:cantidad > 0" json:"cantidad"`
	Subtotal   float64 `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`

	// Relationships
	Venta    Venta    `gorm:"foreignKey:IDVenta" json:"venta,omitempty"`
	Producto Producto `gorm:"foreignKey:IDProducto" json:"producto,omitempty"`
}

// TableName specifies the table name for DetalleVenta
func (DetalleVenta) TableName() string {
	return "detalle_venta"
}
