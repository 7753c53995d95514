package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inventario/database"
)

// GetSQLLogs returns the recorded SQL statements as JSON
func (h *Handler) GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetQueries()
	return c.JSON(fiber.Map{
		"total":   len(queries),
		"queries": queries,
	})
}

// ClearSQLLogs clears the recorded SQL statements
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{"message": "SQL logs cleared"})
}
