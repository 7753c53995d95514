package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inventario/services"
)

// SalesNew displays the sales entry form. The date is fixed to the
// current day; the product selector carries stock and unit price so
// the page can validate and show a running total before anything is
// sent.
func (h *Handler) SalesNew(c *fiber.Ctx) error {
	productos, err := h.inventory.ListarProductos()
	if err != nil {
		return renderError(c, err, "No se pudo cargar la lista de productos")
	}

	return c.Render("pages/sales/form", fiber.Map{
		"Title":           "Registrar Venta",
		"Active":          "ventas",
		"Fecha":           time.Now().Format("2006-01-02"),
		"Productos":       productos,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// SalesCreate finalizes a sale: header plus all lines in one
// transaction. Line data arrives as comma-separated id and quantity
// lists built by the form.
func (h *Handler) SalesCreate(c *fiber.Ctx) error {
	idsProducto := parseStringArray(c.FormValue("ids_producto"))
	cantidades := parseStringArray(c.FormValue("cantidades"))

	if len(idsProducto) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No se han agregado productos a la venta",
		})
	}
	if len(idsProducto) != len(cantidades) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Datos de la venta inválidos",
		})
	}

	lineas := make([]services.LineaVenta, 0, len(idsProducto))
	for i, idStr := range idsProducto {
		idProducto, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID de producto inválido: " + idStr,
			})
		}
		cantidad, err := strconv.Atoi(cantidades[i])
		if err != nil || cantidad <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "La cantidad debe ser un entero positivo: " + cantidades[i],
			})
		}
		lineas = append(lineas, services.LineaVenta{
			IDProducto: uint(idProducto),
			Cantidad:   cantidad,
		})
	}

	idVenta, err := h.sales.RegistrarVenta(time.Now(), lineas)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": "No se pudo registrar la venta: " + err.Error(),
		})
	}

	if c.Get("Content-Type") == "application/json" {
		return c.JSON(fiber.Map{
			"success":  true,
			"id_venta": idVenta,
			"message":  "Venta registrada exitosamente",
		})
	}

	return c.Redirect(fmt.Sprintf("/ventas/%d", idVenta))
}

// SalesView displays a registered sale with its lines
func (h *Handler) SalesView(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return renderError(c, err, "ID de venta inválido")
	}

	venta, detalles, err := h.sales.ObtenerVenta(uint(id))
	if err != nil {
		return renderError(c, err, "No se encontró la venta")
	}

	return c.Render("pages/sales/view", fiber.Map{
		"Title":           "Detalle de Venta",
		"Active":          "ventas",
		"Venta":           venta,
		"Detalles":        detalles,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// Helper function to parse comma-separated string arrays
func parseStringArray(str string) []string {
	if str == "" {
		return []string{}
	}

	var result []string
	for _, s := range strings.Split(str, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
