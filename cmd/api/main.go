package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/sitebuilder-api/docs"
	"github.com/jhoicas/sitebuilder-api/internal/application/usecase"
	"github.com/jhoicas/sitebuilder-api/internal/domain/template"
	"github.com/jhoicas/sitebuilder-api/internal/infrastructure/metrics"
	"github.com/jhoicas/sitebuilder-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sitebuilder-api/internal/interfaces/http"
	"github.com/jhoicas/sitebuilder-api/pkg/config"
	"github.com/jhoicas/sitebuilder-api/pkg/logger"
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
		Msg("iniciando aplicación")

	// El registro se valida al cargar el paquete; si llegamos aquí es consistente.
	registry := template.Shipped()
	if missing := template.MissingBaseline(registry.Default()); len(missing) > 0 {
		log.Warn().Interface("missing", missing).Msg("la plantilla por defecto no trae todos los módulos base")
	}
	log.Info().
		Int("templates", registry.Len()).
		Str("default", string(registry.Default().Category)).
		Msg("registro de plantillas cargado")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	recorder := metrics.NewRecorder(true)

	resolver := template.DefaultResolver()
	templateUC := usecase.NewTemplateUseCase(resolver, tenantRepo, recorder, log)
	navigationUC := usecase.NewNavigationUseCase(templateUC)
	moduleSvc := usecase.NewModuleService(templateUC, recorder)
	tenantUC := usecase.NewTenantUseCase(tenantRepo, resolver)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Metrics.Enabled {
		app.Use(httpRouter.MetricsMiddleware(recorder, cfg.Metrics.Path))
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(recorder.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Sitebuilder API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TemplateUC:    templateUC,
		NavigationUC:  navigationUC,
		ModuleService: moduleSvc,
		TenantUC:      tenantUC,
		JWTSecret:     cfg.JWT.Secret,
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
