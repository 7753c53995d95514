package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inventario/database"
)

// SQLDebugMiddleware injects SQL logs into each request context
func SQLDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		beforeCount := len(database.SQLLogger.GetQueries())

		err := c.Next()

		// Queries executed during this request (latest first)
		afterQueries := database.SQLLogger.GetQueries()
		requestQueries := []database.QueryLog{}

		if diff := len(afterQueries) - beforeCount; diff > 0 && diff <= len(afterQueries) {
			requestQueries = afterQueries[:diff]
		}

		c.Locals("SQLQueries", requestQueries)
		c.Locals("TotalSQLQueries", len(requestQueries))

		return err
	}
}
