package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/ElectroPos-api/internal/application/analytics"
	"github.com/jhoicas/ElectroPos-api/internal/application/auth"
	apppos "github.com/jhoicas/ElectroPos-api/internal/application/pos"
	"github.com/jhoicas/ElectroPos-api/internal/application/purchases"
	"github.com/jhoicas/ElectroPos-api/internal/application/sales"
	"github.com/jhoicas/ElectroPos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/ElectroPos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ElectroPos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ElectroPos-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/ElectroPos-api/internal/interfaces/http"
	"github.com/jhoicas/ElectroPos-api/pkg/config"
	"github.com/jhoicas/ElectroPos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	salesInvoiceRepo := postgres.NewSalesInvoiceRepository(pool)
	purchaseInvoiceRepo := postgres.NewPurchaseInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	createInvoiceUC := sales.NewCreateSalesInvoiceUseCase(
		txRunner, productRepo, customerRepo, salesInvoiceRepo, cfg.POS.TaxRatePercent,
	)
	documentUC := sales.NewDocumentUseCase(
		salesInvoiceRepo, productRepo,
		infrapdf.NewMarotoInvoiceGenerator(cfg.App.Name),
		xmlexport.NewInvoiceXMLBuilder(),
	)
	purchaseUC := purchases.NewPurchaseInvoiceUseCase(
		txRunner, productRepo, supplierRepo, purchaseInvoiceRepo,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Sesiones de caja: un carrito en memoria por cajero.
	posSessions := apppos.NewSessionManager(
		cfg.POS.TaxRatePercent, productRepo, customerRepo, createInvoiceUC,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ElectroPos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		CategoryUC:      categoryUC,
		SupplierUC:      supplierUC,
		CustomerUC:      customerUC,
		AuthUC:          authUC,
		CreateInvoiceUC: createInvoiceUC,
		DocumentUC:      documentUC,
		PurchaseUC:      purchaseUC,
		DashboardUC:     dashboardUC,
		POSSessions:     posSessions,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
