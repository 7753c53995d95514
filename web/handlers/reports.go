package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inventario/services"
)

// ReportsPage displays the monthly sales report. The month and year
// selectors are populated from the recorded sales; with mes/anio query
// parameters present it also renders the bar chart data and the
// best-seller summary.
func (h *Handler) ReportsPage(c *fiber.Ctx) error {
	meses, err := h.sales.MesesConVentas()
	if err != nil {
		return renderError(c, err, "No se pudieron cargar los meses con ventas")
	}
	anios, err := h.sales.AniosConVentas()
	if err != nil {
		return renderError(c, err, "No se pudieron cargar los años con ventas")
	}

	// Fall back to the current period when nothing is recorded yet
	now := time.Now()
	if len(meses) == 0 {
		meses = []int{int(now.Month())}
	}
	if len(anios) == 0 {
		anios = []int{now.Year()}
	}

	mes := c.QueryInt("mes", 0)
	anio := c.QueryInt("anio", 0)

	data := fiber.Map{
		"Title":           "Reportes de Ventas",
		"Active":          "reportes",
		"Meses":           meses,
		"Anios":           anios,
		"Mes":             mes,
		"Anio":            anio,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}

	if mes == 0 || anio == 0 {
		return c.Render("pages/reports/index", data, "layouts/base")
	}

	filas, err := h.sales.ReporteVentas(mes, anio)
	if err != nil {
		return renderError(c, err, "No se pudo generar el reporte")
	}

	data["Filas"] = filas
	data["SinDatos"] = len(filas) == 0

	if len(filas) > 0 {
		// Rows arrive ordered by quantity desc, so the first one is the
		// best seller; the top earner can be a different product.
		data["MasVendido"] = filas[0]
		if mejor, ok := services.MejorPorIngresos(filas); ok {
			data["MayorIngresos"] = mejor
		}
	}

	return c.Render("pages/reports/index", data, "layouts/base")
}
