package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inventario/services"
)

// Handler groups the page handlers around the injected services.
type Handler struct {
	inventory *services.InventoryService
	sales     *services.SalesService
}

// New creates the handler set
func New(inventory *services.InventoryService, sales *services.SalesService) *Handler {
	return &Handler{inventory: inventory, sales: sales}
}

// statusFor maps a service failure kind to an HTTP status. Validation
// failures are the caller's fault; lost sessions are temporary;
// everything else is reported with the database's message.
func statusFor(err error) int {
	switch services.ErrorKind(err) {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindConnection:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// renderError shows the error page with a contextual message
func renderError(c *fiber.Ctx, err error, contexto string) error {
	code := statusFor(err)
	return c.Status(code).Render("pages/error", fiber.Map{
		"Title": "Error",
		"Error": contexto + ": " + err.Error(),
		"Code":  code,
	}, "layouts/base")
}
