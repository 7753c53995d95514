package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ProductList displays all products with the insert/update form
func (h *Handler) ProductList(c *fiber.Ctx) error {
	productos, err := h.inventory.ListarProductos()
	if err != nil {
		return renderError(c, err, "No se pudo cargar la lista de productos")
	}

	return c.Render("pages/products/list", fiber.Map{
		"Title":           "Gestión de Productos",
		"Active":          "productos",
		"Productos":       productos,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// ProductNew shows form to create new product
func (h *Handler) ProductNew(c *fiber.Ctx) error {
	return c.Render("pages/products/form", fiber.Map{
		"Title":           "Nuevo Producto",
		"Active":          "productos",
		"IsNew":           true,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// ProductCreate creates a new product
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	nombre := c.FormValue("nombre")
	marca := c.FormValue("marca")

	// Reject malformed numbers locally, before any database call
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El stock debe ser un entero no negativo",
		})
	}
	precio, err := strconv.ParseFloat(c.FormValue("precio"), 64)
	if err != nil || precio < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El precio debe ser un número no negativo",
		})
	}

	if err := h.inventory.InsertarProducto(nombre, marca, stock, precio); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": "No se pudo insertar el producto: " + err.Error(),
		})
	}

	return c.Redirect("/productos")
}

// ProductEdit shows form to edit product
func (h *Handler) ProductEdit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return renderError(c, err, "ID de producto inválido")
	}

	producto, err := h.inventory.ObtenerProducto(uint(id))
	if err != nil {
		return renderError(c, err, "No se encontró el producto")
	}

	return c.Render("pages/products/form", fiber.Map{
		"Title":           "Modificar Producto",
		"Active":          "productos",
		"Producto":        producto,
		"IsNew":           false,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// ProductUpdate updates a product
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de producto inválido",
		})
	}

	nombre := c.FormValue("nombre")
	marca := c.FormValue("marca")

	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El stock debe ser un entero no negativo",
		})
	}
	precio, err := strconv.ParseFloat(c.FormValue("precio"), 64)
	if err != nil || precio < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El precio debe ser un número no negativo",
		})
	}

	if err := h.inventory.ActualizarProducto(uint(id), nombre, marca, stock, precio); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": "No se pudo modificar el producto: " + err.Error(),
		})
	}

	return c.Redirect("/productos")
}

// ProductDelete deletes a product. The database rejects the call when
// sale lines still reference it.
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de producto inválido",
		})
	}

	if err := h.inventory.EliminarProducto(uint(id)); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": "No se pudo eliminar el producto: " + err.Error(),
		})
	}

	return c.Redirect("/productos")
}
