package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/Contable-pos/internal/application/analytics"
	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/archive"
	infrapdf "github.com/jhoicas/Contable-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/storage"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/Contable-pos/internal/interfaces/http"
	"github.com/jhoicas/Contable-pos/pkg/config"
	"github.com/jhoicas/Contable-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	// Cargas fallidas no detienen el arranque: cada componente inicia vacío y lo registra.
	catalog := inventory.NewCatalog(ctx, stores.Products, log.Component("catalog"))
	customers := billing.NewCustomerDirectory(ctx, stores.Customers, log.Component("customers"))
	ledger := billing.NewLedger(ctx, stores.Invoices, log.Component("ledger"))
	builder := billing.NewBuilder(catalog, ledger, log.Component("builder"))

	invoicePDFUC := billing.NewPDFUseCase(ledger, infrapdf.NewMarotoPDFGenerator(language.Spanish))
	invoiceXMLUC := billing.NewXMLUseCase(ledger, ubl.NewBuilder(ubl.DefaultCurrency))
	invoiceBundleUC := billing.NewBundleUseCase(invoicePDFUC, invoiceXMLUC, archive.NewZipPacker())
	reportUC := analytics.NewReportUseCase(catalog, ledger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contable POS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		StorageDriver: cfg.Storage.Driver,
		Catalog:       catalog,
		Customers:     customers,
		Ledger:        ledger,
		Builder:       builder,
		PDF:           invoicePDFUC,
		XML:           invoiceXMLUC,
		Bundle:        invoiceBundleUC,
		Reports:       reportUC,
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
