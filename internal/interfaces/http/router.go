package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/analytics"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/auth"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/clients"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/products"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/quotations"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/tools"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/barcode"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	ToolUC            *tools.ToolUseCase
	CodeUC            *tools.CodeUseCase
	ProductUC         *products.ProductUseCase
	MovementUC        *movements.MovementUseCase
	ProductMovementUC *movements.ProductMovementUseCase
	ClientUC          *clients.ClientUseCase
	QuotationUC       *quotations.QuotationUseCase
	DashboardUC       *analytics.DashboardUseCase
	Exporter          *excel.InventoryExporter
	Renderer          *barcode.Renderer
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth. Register lleva auth opcional: el primer usuario se crea sin
	// token, los siguientes los crea un admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", OptionalAuthMiddleware(deps.JWTSecret), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/validate", AuthMiddleware(deps.JWTSecret), authHandler.Validate)

	// Imágenes de códigos (público: impresión de etiquetas sin sesión).
	codeHandler := NewCodeHandler(deps.CodeUC, deps.Renderer)
	api.Get("/herramientas/:id/codigos/barcode.png", codeHandler.RenderBarcode)
	api.Get("/herramientas/:id/codigos/qr.png", codeHandler.RenderQR)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Herramientas
	toolHandler := NewToolHandler(deps.ToolUC)
	herramientas := protected.Group("/herramientas")
	herramientas.Post("/", toolHandler.Create)
	herramientas.Get("/", toolHandler.List)
	herramientas.Get("/codigo/:code", toolHandler.GetByCode)
	herramientas.Get("/:id", toolHandler.GetByID)
	herramientas.Put("/:id", toolHandler.Update)
	herramientas.Delete("/:id", RequireRole(entity.RoleAdmin), toolHandler.Delete)

	// Códigos de escaneo
	herramientas.Get("/:id/codigos", codeHandler.Get)
	herramientas.Post("/:id/codigos", codeHandler.Generate)
	protected.Post("/codigos/generar-masivo", RequireRole(entity.RoleAdmin), codeHandler.GenerateBulk)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	productos := protected.Group("/productos")
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Movimientos de herramientas (lote atómico)
	movementHandler := NewMovementHandler(deps.MovementUC)
	movimientos := protected.Group("/movimientos")
	movimientos.Post("/", movementHandler.Register)
	movimientos.Get("/", movementHandler.List)

	// Movimientos de productos
	productMovementHandler := NewProductMovementHandler(deps.ProductMovementUC)
	movProductos := protected.Group("/movimientos-producto")
	movProductos.Post("/", productMovementHandler.Register)
	movProductos.Get("/", productMovementHandler.List)

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC)
	clientes := protected.Group("/clientes")
	clientes.Post("/", clientHandler.Create)
	clientes.Get("/", clientHandler.List)
	clientes.Get("/:id", clientHandler.GetByID)
	clientes.Put("/:id", clientHandler.Update)
	clientes.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Cotizaciones
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	cotizaciones := protected.Group("/cotizaciones")
	cotizaciones.Post("/", quotationHandler.Create)
	cotizaciones.Get("/", quotationHandler.List)
	cotizaciones.Get("/:id", quotationHandler.GetByID)
	cotizaciones.Get("/:id/pdf", quotationHandler.PDF)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	reportHandler := NewReportHandler(deps.Exporter)
	protected.Get("/reportes/inventario.xlsx", RequireRole(entity.RoleAdmin), reportHandler.Inventory)
}
