package web

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/inventario/web/handlers"
	"github.com/inventario/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server wired to the handler set
func NewServer(h *handlers.Handler) *Server {
	// Initialize template engine
	engine := html.New("./web/templates", ".html")
	engine.Reload(true) // Enable hot reload for development

	// Add custom template functions
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006")
	})
	engine.AddFunc("formatCurrency", func(amount float64) string {
		return fmt.Sprintf("$ %.2f", amount)
	})
	engine.AddFunc("json", func(v interface{}) string {
		b, err := json.Marshal(v)
		if err != nil {
			return "{}"
		}
		return string(b)
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			if c.Get("Content-Type") == "application/json" {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title": "Error",
				"Error": err.Error(),
				"Code":  code,
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to inject SQL logs into context
	app.Use(middleware.SQLDebugMiddleware())

	// Method override middleware for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == "POST" {
			method := c.FormValue("_method")
			if method != "" {
				c.Method(method)
			}
		}
		return c.Next()
	})

	// Static files
	app.Static("/static", "./web/static")

	setupRoutes(app, h)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// Home page
	app.Get("/", h.HomePage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", h.GetSQLLogs)
	app.Delete("/api/debug/sql", h.ClearSQLLogs)

	// Product management
	productos := app.Group("/productos")
	productos.Get("/", h.ProductList)
	productos.Get("/nuevo", h.ProductNew)
	productos.Post("/", h.ProductCreate)
	productos.Get("/:id/editar", h.ProductEdit)
	productos.Put("/:id", h.ProductUpdate)
	productos.Delete("/:id", h.ProductDelete)

	// Sales operations
	ventas := app.Group("/ventas")
	ventas.Get("/nueva", h.SalesNew)
	ventas.Post("/", h.SalesCreate)
	ventas.Get("/:id", h.SalesView)

	// Reports
	app.Get("/reportes", h.ReportsPage)
}
