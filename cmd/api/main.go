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

	"github.com/Vanshit011/nandan-bottling/internal/application/auth"
	"github.com/Vanshit011/nandan-bottling/internal/application/billing"
	appdelivery "github.com/Vanshit011/nandan-bottling/internal/application/delivery"
	"github.com/Vanshit011/nandan-bottling/internal/application/directory"
	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
	infrapdf "github.com/Vanshit011/nandan-bottling/internal/infrastructure/pdf"
	"github.com/Vanshit011/nandan-bottling/internal/infrastructure/postgres"
	infrasms "github.com/Vanshit011/nandan-bottling/internal/infrastructure/sms"
	httpRouter "github.com/Vanshit011/nandan-bottling/internal/interfaces/http"
	"github.com/Vanshit011/nandan-bottling/pkg/config"
	"github.com/Vanshit011/nandan-bottling/pkg/logger"
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

	adminRepo := postgres.NewAdminRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	billRepo := postgres.NewBillRepository(pool)

	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := directory.NewCustomerUseCase(customerRepo, cfg.WA.CountryCode)
	deliveryUC := appdelivery.NewUseCase(deliveryRepo, customerRepo)

	waBuilder := notify.NewWhatsAppBuilder(cfg.WA.CountryCode, cfg.WA.BusinessName, cfg.WA.PaymentNote)
	aggregator := billing.NewAggregator(deliveryRepo, customerRepo, waBuilder)
	billUC := billing.NewBillUseCase(billRepo)

	// PDF: estado de cuenta mensual descargable
	statementGen := infrapdf.NewMarotoStatementGenerator()
	statementUC := billing.NewStatementUseCase(aggregator, statementGen, cfg.WA.BusinessName)

	smsClient := infrasms.NewFast2SMSClient(cfg.SMS)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nandan Bottling API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		DeliveryUC:  deliveryUC,
		Aggregator:  aggregator,
		StatementUC: statementUC,
		BillUC:      billUC,
		SMSSender:   smsClient,
		JWTSecret:   cfg.JWT.Secret,
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
