package models

// Producto represents the productos table
type Producto struct {
	IDProducto uint    `gorm:"primaryKey;column:id_producto" json:"id_producto"`
	Nombre     string  `gorm:"type:varchar(100);not null" json:"nombre"`
	Marca      string  `gorm:"type:varchar(100);not null;default:'No informado'" json:"marca"`
	Stock      int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Precio     float64 `gorm:"type:decimal(12,2);not null;check:precio >= 0" json:"precio"`
}

// TableName specifies the table name for Producto
func (Producto) TableName() string {
	return "productos"
}
