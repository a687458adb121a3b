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

	"github.com/jcampos/albaranes-api/internal/application/auth"
	"github.com/jcampos/albaranes-api/internal/application/usecase"
	"github.com/jcampos/albaranes-api/internal/infrastructure/email"
	infrapdf "github.com/jcampos/albaranes-api/internal/infrastructure/pdf"
	"github.com/jcampos/albaranes-api/internal/infrastructure/postgres"
	"github.com/jcampos/albaranes-api/internal/infrastructure/slack"
	httpRouter "github.com/jcampos/albaranes-api/internal/interfaces/http"
	"github.com/jcampos/albaranes-api/pkg/config"
	"github.com/jcampos/albaranes-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	albaranRepo := postgres.NewAlbaranRepository(pool)

	notifier := slack.NewWebhookNotifier(cfg.Slack.WebhookURL)
	emailSender := email.NewSMTPSender(cfg.SMTP)
	pdfGenerator := infrapdf.NewMarotoAlbaranGenerator()

	authUC := auth.NewAuthUseCase(userRepo, emailSender, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, notifier)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo, userRepo, notifier)
	albaranUC := usecase.NewAlbaranUseCase(albaranRepo, clientRepo, userRepo, pdfGenerator)

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
		Title:    "Albaranes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ClientUC:  clientUC,
		ProjectUC: projectUC,
		AlbaranUC: albaranUC,
		Users:     userRepo,
		JWTSecret: cfg.JWT.Secret,
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
