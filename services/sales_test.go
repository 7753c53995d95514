package services

import (
	"testing"
	"time"
)

func TestInsertarDetalleVentaValidacion(t *testing.T) {
	s := NewSalesService(nil)

	tests := []struct {
		name       string
		idVenta    uint
		idProducto uint
		cantidad   int
	}{
		{"venta cero", 0, 1, 3},
		{"producto cero", 1, 0, 3},
		{"cantidad cero", 1, 1, 0},
		{"cantidad negativa", 1, 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.InsertarDetalleVenta(tt.idVenta, tt.idProducto, tt.cantidad)
			if err == nil {
				t.Fatal("se esperaba un error de validación")
			}
			if ErrorKind(err) != KindValidation {
				t.Errorf("kind = %v, se esperaba KindValidation", ErrorKind(err))
			}
		})
	}
}

func TestRegistrarVentaValidacion(t *testing.T) {
	s := NewSalesService(nil)
	hoy := time.Now()

	tests := []struct {
		name   string
		lineas []LineaVenta
	}{
		{"sin líneas", nil},
		{"líneas vacías", []LineaVenta{}},
		{"producto cero", []LineaVenta{{IDProducto: 0, Cantidad: 1}}},
		{"cantidad cero", []LineaVenta{{IDProducto: 1, Cantidad: 0}}},
		{"una línea inválida entre válidas", []LineaVenta{
			{IDProducto: 1, Cantidad: 2},
			{IDProducto: 2, Cantidad: -1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RegistrarVenta(hoy, tt.lineas)
			if err == nil {
				t.Fatal("se esperaba un error de validación")
			}
			if ErrorKind(err) != KindValidation {
				t.Errorf("kind = %v, se esperaba KindValidation", ErrorKind(err))
			}
		})
	}
}

func TestObtenerVentaIDCero(t *testing.T) {
	s := NewSalesService(nil)

	_, _, err := s.ObtenerVenta(0)
	if err == nil {
		t.Fatal("se esperaba un error de validación")
	}
	if ErrorKind(err) != KindValidation {
		t.Errorf("kind = %v, se esperaba KindValidation", ErrorKind(err))
	}
}

func TestReporteVentasValidacion(t *testing.T) {
	s := NewSalesService(nil)

	tests := []struct {
		name string
		mes  int
		anio int
	}{
		{"mes cero", 0, 2026},
		{"mes trece", 13, 2026},
		{"mes negativo", -1, 2026},
		{"año cero", 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ReporteVentas(tt.mes, tt.anio)
			if err == nil {
				t.Fatal("se esperaba un error de validación")
			}
			if ErrorKind(err) != KindValidation {
				t.Errorf("kind = %v, se esperaba KindValidation", ErrorKind(err))
			}
		})
	}
}

func TestMejorPorIngresos(t *testing.T) {
	filas := []FilaReporte{
		{Nombre: "Arroz", TotalVendido: 50, TotalIngresos: 75.00},
		{Nombre: "Aceite", TotalVendido: 20, TotalIngresos: 130.00},
		{Nombre: "Sal", TotalVendido: 20, TotalIngresos: 10.00},
	}

	mejor, ok := MejorPorIngresos(filas)
	if !ok {
		t.Fatal("se esperaba un resultado")
	}
	if mejor.Nombre != "Aceite" {
		t.Errorf("mejor = %q, se esperaba Aceite", mejor.Nombre)
	}
}

func TestMejorPorIngresosEmpate(t *testing.T) {
	// A tie on revenue keeps the earlier row, which arrives first in
	// the report ordering.
	filas := []FilaReporte{
		{Nombre: "Arroz", TotalVendido: 30, TotalIngresos: 45.00},
		{Nombre: "Sal", TotalVendido: 10, TotalIngresos: 45.00},
	}

	mejor, ok := MejorPorIngresos(filas)
	if !ok {
		t.Fatal("se esperaba un resultado")
	}
	if mejor.Nombre != "Arroz" {
		t.Errorf("mejor = %q, se esperaba Arroz", mejor.Nombre)
	}
}

func TestMejorPorIngresosVacio(t *testing.T) {
	if _, ok := MejorPorIngresos(nil); ok {
		t.Error("no se esperaba un resultado para un reporte vacío")
	}
}
