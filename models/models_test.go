package models

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		model interface{ TableName() string }
		want  string
	}{
		{Producto{}, "productos"},
		{Venta{}, "ventas"},
		{DetalleVenta{}, "detalle_venta"},
	}

	for _, tt := range tests {
		if got := tt.model.TableName(); got != tt.want {
			t.Errorf("TableName = %q, se esperaba %q", got, tt.want)
		}
	}
}

func TestProductoCreateAndList(t *testing.T) {
	db := openTestDB(t)

	p := Producto{Nombre: "Arroz Integral", Marca: "Campo Verde", Stock: 40, Precio: 3.80}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("crear producto: %v", err)
	}
	if p.IDProducto == 0 {
		t.Fatal("se esperaba un id generado")
	}

	var productos []Producto
	if err := db.Order("id_producto").Find(&productos).Error; err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(productos) != 1 || productos[0].Nombre != "Arroz Integral" {
		t.Errorf("listado inesperado: %+v", productos)
	}
}

func TestVentaConDetalles(t *testing.T) {
	db := openTestDB(t)

	p := Producto{Nombre: "Aceite de Oliva", Marca: "Del Sur", Stock: 10, Precio: 8.90}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("crear producto: %v", err)
	}

	v := Venta{Fecha: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("crear venta: %v", err)
	}

	d := DetalleVenta{IDVenta: v.IDVenta, IDProducto: p.IDProducto, Cantidad: 2, Subtotal: 17.80}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("crear detalle: %v", err)
	}

	var cargado DetalleVenta
	err := db.Preload("Venta").Preload("Producto").
		First(&cargado, "id_detalle = ?", d.IDDetalle).Error
	if err != nil {
		t.Fatalf("cargar detalle: %v", err)
	}
	if cargado.Producto.Nombre != "Aceite de Oliva" {
		t.Errorf("producto asociado = %q", cargado.Producto.Nombre)
	}
	if cargado.Venta.IDVenta != v.IDVenta {
		t.Errorf("venta asociada = %d", cargado.Venta.IDVenta)
	}
}

func TestAllModelsOrden(t *testing.T) {
	// detalle_venta references the other two tables, so it must migrate
	// last
	all := AllModels()
	if len(all) != 3 {
		t.Fatalf("len = %d, se esperaban 3", len(all))
	}
	if _, ok := all[len(all)-1].(*DetalleVenta); !ok {
		t.Error("DetalleVenta debe ir al final")
	}
}
