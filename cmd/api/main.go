package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/analytics"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/auth"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/clients"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/movements"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/products"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/quotations"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/tools"
	infrabarcode "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/barcode"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/excel"
	infrapdf "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/pdf"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/interfaces/http"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/pkg/config"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	toolRepo := postgres.NewToolRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productMovementRepo := postgres.NewProductMovementRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	toolUC := tools.NewToolUseCase(toolRepo)
	codeUC := tools.NewCodeUseCase(toolRepo)
	productUC := products.NewProductUseCase(productRepo)
	movementUC := movements.NewMovementUseCase(txRunner, movementRepo, userRepo)
	productMovementUC := movements.NewProductMovementUseCase(txRunner, productMovementRepo, userRepo)
	clientUC := clients.NewClientUseCase(clientRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	quotationUC := quotations.NewQuotationUseCase(quotationRepo, clientRepo, pdfGenerator)

	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, movementRepo)
	exporter := excel.NewInventoryExporter(toolRepo, productRepo)
	renderer := infrabarcode.NewRenderer()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		ToolUC:            toolUC,
		CodeUC:            codeUC,
		ProductUC:         productUC,
		MovementUC:        movementUC,
		ProductMovementUC: productMovementUC,
		ClientUC:          clientUC,
		QuotationUC:       quotationUC,
		DashboardUC:       dashboardUC,
		Exporter:          exporter,
		Renderer:          renderer,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
