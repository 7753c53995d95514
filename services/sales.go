package services

import (
	"time"

	"github.com/inventario/models"
	"gorm.io/gorm"
)

// SalesService creates sales and runs the monthly reports. A sale is
// a header plus line items; the database computes subtotals and the
// running total and rejects lines that exceed the available stock.
type SalesService struct {
	db *gorm.DB
}

// NewSalesService creates a sales service bound to a database session.
func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// LineaVenta is one requested line of a sale. Price is intentionally
// absent: the database resolves the current product price at insert
// time.
type LineaVenta struct {
	IDProducto uint
	Cantidad   int
}

// FilaReporte is one aggregate row of the monthly sales report.
type FilaReporte struct {
	Nombre        string  `json:"nombre"`
	TotalVendido  int64   `json:"total_vendido"`
	TotalIngresos float64 `json:"total_ingresos"`
}

// DetalleConProducto is a sale line joined with its product for
// display. PrecioUnitario is reconstructed from the stored subtotal,
// so it reflects the price at insertion time even if the product price
// changed afterwards.
type DetalleConProducto struct {
	IDProducto     uint    `json:"id_producto"`
	Nombre         string  `json:"nombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// InsertarVenta creates a sale header with total 0 via
// sp_insertar_venta and returns the generated id.
func (s *SalesService) InsertarVenta(fecha time.Time) (uint, error) {
	const op = "insertar venta"

	var id uint
	err := s.db.Raw(
		"SELECT inventario.sp_insertar_venta(?)",
		fecha.Format("2006-01-02"),
	).Scan(&id).Error
	if err != nil {
		return 0, wrapDB(op, err)
	}
	return id, nil
}

// InsertarDetalleVenta appends one line to an existing sale via
// sp_insertar_detalle_venta. The database validates stock and computes
// the subtotal; an insufficient-stock rejection surfaces as a database
// error and leaves the product stock unchanged.
func (s *SalesService) InsertarDetalleVenta(idVenta, idProducto uint, cantidad int) error {
	const op = "insertar detalle de venta"

	if idVenta == 0 || idProducto == 0 {
		return validationError(op, "venta o producto inválido")
	}
	if cantidad <= 0 {
		return validationError(op, "la cantidad debe ser un entero positivo")
	}

	err := s.db.Exec(
		"CALL inventario.sp_insertar_detalle_venta(?, ?, ?)",
		idVenta, idProducto, cantidad,
	).Error
	if err != nil {
		return wrapDB(op, err)
	}
	return nil
}

// RegistrarVenta creates a sale header and all its lines in a single
// transaction, so a mid-sale failure never leaves a partial sale
// behind.
func (s *SalesService) RegistrarVenta(fecha time.Time, lineas []LineaVenta) (uint, error) {
	const op = "registrar venta"

	if len(lineas) == 0 {
		return 0, validationError(op, "la venta no tiene productos")
	}
	for _, l := range lineas {
		if l.IDProducto == 0 {
			return 0, validationError(op, "producto inválido")
		}
		if l.Cantidad <= 0 {
			return 0, validationError(op, "la cantidad debe ser un entero positivo")
		}
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(
			"SELECT inventario.sp_insertar_venta(?)",
			fecha.Format("2006-01-02"),
		).Scan(&id).Error
		if err != nil {
			return err
		}

		for _, l := range lineas {
			err := tx.Exec(
				"CALL inventario.sp_insertar_detalle_venta(?, ?, ?)",
				id, l.IDProducto, l.Cantidad,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, wrapDB(op, err)
	}
	return id, nil
}

// ObtenerVenta returns a sale header with its joined lines.
func (s *SalesService) ObtenerVenta(id uint) (models.Venta, []DetalleConProducto, error) {
	const op = "obtener venta"

	var venta models.Venta
	if id == 0 {
		return venta, nil, validationError(op, "id de venta inválido")
	}

	tx := s.db.Raw(`
		SELECT id_venta, fecha, total
		FROM inventario.ventas
		WHERE id_venta = ?
	`, id).Scan(&venta)
	if tx.Error != nil {
		return venta, nil, wrapDB(op, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return venta, nil, wrapDB(op, gorm.ErrRecordNotFound)
	}

	var detalles []DetalleConProducto
	err := s.db.Raw(`
		SELECT
			dv.id_producto,
			p.nombre,
			dv.cantidad,
			dv.subtotal / dv.cantidad AS precio_unitario,
			dv.subtotal
		FROM inventario.detalle_venta dv
		JOIN inventario.productos p ON dv.id_producto = p.id_producto
		WHERE dv.id_venta = ?
		ORDER BY dv.id_detalle
	`, id).Scan(&detalles).Error
	if err != nil {
		return venta, nil, wrapDB(op, err)
	}
	return venta, detalles, nil
}

// MesesConVentas returns the distinct months with recorded sales,
// ascending.
func (s *SalesService) MesesConVentas() ([]int, error) {
	const op = "listar meses con ventas"

	var meses []int
	err := s.db.Raw(`
		SELECT DISTINCT EXTRACT(MONTH FROM fecha)::int AS mes
		FROM inventario.ventas
		ORDER BY mes
	`).Scan(&meses).Error
	if err != nil {
		return nil, wrapDB(op, err)
	}
	return meses, nil
}

// AniosConVentas returns the distinct years with recorded sales,
// ascending.
func (s *SalesService) AniosConVentas() ([]int, error) {
	const op = "listar años con ventas"

	var anios []int
	err := s.db.Raw(`
		SELECT DISTINCT EXTRACT(YEAR FROM fecha)::int AS anio
		FROM inventario.ventas
		ORDER BY anio
	`).Scan(&anios).Error
	if err != nil {
		return nil, wrapDB(op, err)
	}
	return anios, nil
}

// ReporteVentas returns one aggregate row per product sold in the
// given month and year. Ordering is quantity desc, revenue desc, name
// asc, so the first row is the deterministic best seller.
func (s *SalesService) ReporteVentas(mes, anio int) ([]FilaReporte, error) {
	const op = "reporte de ventas"

	if mes < 1 || mes > 12 {
		return nil, validationError(op, "mes inválido: %d", mes)
	}
	if anio < 1 {
		return nil, validationError(op, "año inválido: %d", anio)
	}

	var filas []FilaReporte
	err := s.db.Raw(`
		SELECT
			p.nombre,
			SUM(dv.cantidad) AS total_vendido,
			SUM(dv.subtotal) AS total_ingresos
		FROM inventario.ventas v
		JOIN inventario.detalle_venta dv ON v.id_venta = dv.id_venta
		JOIN inventario.productos p ON dv.id_producto = p.id_producto
		WHERE EXTRACT(MONTH FROM v.fecha) = ? AND EXTRACT(YEAR FROM v.fecha) = ?
		GROUP BY p.id_producto, p.nombre
		ORDER BY total_vendido DESC, total_ingresos DESC, p.nombre ASC
	`, mes, anio).Scan(&filas).Error
	if err != nil {
		return nil, wrapDB(op, err)
	}
	return filas, nil
}

// MejorPorIngresos picks the report row with the highest revenue. The
// rows arrive ordered by quantity, so the top earner can differ from
// the first row.
func MejorPorIngresos(filas []FilaReporte) (FilaReporte, bool) {
	if len(filas) == 0 {
		return FilaReporte{}, false
	}
	mejor := filas[0]
	for _, f := range filas[1:] {
		if f.TotalIngresos > mejor.TotalIngresos {
			mejor = f
		}
	}
	return mejor, true
}
