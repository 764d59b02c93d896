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

	"github.com/jmoraesdev/lotemap-api/internal/application/auth"
	"github.com/jmoraesdev/lotemap-api/internal/application/reservation"
	"github.com/jmoraesdev/lotemap-api/internal/application/usecase"
	"github.com/jmoraesdev/lotemap-api/internal/infrastructure/cache"
	infrapdf "github.com/jmoraesdev/lotemap-api/internal/infrastructure/pdf"
	"github.com/jmoraesdev/lotemap-api/internal/infrastructure/postgres"
	"github.com/jmoraesdev/lotemap-api/internal/infrastructure/storage"
	httpRouter "github.com/jmoraesdev/lotemap-api/internal/interfaces/http"
	"github.com/jmoraesdev/lotemap-api/pkg/config"
	"github.com/jmoraesdev/lotemap-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	mapaRepo := postgres.NewMapaRepository(pool)
	quadraRepo := postgres.NewQuadraRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// MinIO guarda a imagem de fundo dos mapas. Sem credenciais a API sobe
	// sem upload de imagem; o restante funciona normalmente.
	var imageStore usecase.ImageStore
	if cfg.Storage.AccessKey != "" {
		minioStore, err := storage.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao MinIO")
		}
		imageStore = minioStore
	} else {
		log.Warn().Msg("storage sem credenciais, upload de imagens desativado")
	}

	// Redis acelera a vitrine de lotes e o dashboard; desligado a API
	// consulta o banco diretamente.
	var loteCache usecase.Cache
	var reservaCache reservation.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis")
		}
		defer redisCache.Close()
		loteCache = redisCache
		reservaCache = redisCache
	} else {
		log.Warn().Msg("redis desativado, cache de leitura desligado")
	}

	comprovanteGen := infrapdf.NewMarotoComprovanteGenerator(cfg.App.Name)

	mapaUC := usecase.NewMapaUseCase(mapaRepo, imageStore)
	quadraUC := usecase.NewQuadraUseCase(quadraRepo, mapaRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo, mapaRepo, quadraRepo, loteCache)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, loteCache)
	reservaUC := reservation.NewUseCase(txRunner, reservaRepo, loteRepo, reservaCache, comprovanteGen)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20, // uploads de imagem de mapa
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lotemap API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MapaUC:      mapaUC,
		QuadraUC:    quadraUC,
		LoteUC:      loteUC,
		UsuarioUC:   usuarioUC,
		DashboardUC: dashboardUC,
		ReservaUC:   reservaUC,
		AuthUC:      authUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
