package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HomePage handles the home page
func (h *Handler) HomePage(c *fiber.Ctx) error {
	productos, err := h.inventory.ListarProductos()
	if err != nil {
		return renderError(c, err, "No se pudo cargar el inventario")
	}

	var stats struct {
		TotalProductos int
		StockTotal     int
		SinStock       int
	}
	stats.TotalProductos = len(productos)
	for _, p := range productos {
		stats.StockTotal += p.Stock
		if p.Stock == 0 {
			stats.SinStock++
		}
	}

	return c.Render("pages/home", fiber.Map{
		"Title":           "Gestión de Inventario",
		"Active":          "inicio",
		"Stats":           stats,
		"Hoy":             time.Now().Format("2006-01-02"),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
