package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auvet/auvet-backend/docs"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/domain/repositories"
	httphandlers "github.com/auvet/auvet-backend/internal/handlers/http"
	"github.com/auvet/auvet-backend/internal/handlers/router"
	"github.com/auvet/auvet-backend/internal/infrastructure/config"
	"github.com/auvet/auvet-backend/internal/infrastructure/i18n"
	"github.com/auvet/auvet-backend/internal/infrastructure/logging"
	"github.com/auvet/auvet-backend/internal/infrastructure/persistence/database"
	"github.com/auvet/auvet-backend/internal/infrastructure/persistence/memory"
	"github.com/auvet/auvet-backend/internal/infrastructure/realtime"
	"github.com/auvet/auvet-backend/internal/services"
)

// storage agrupa as implementações escolhidas por DB_DRIVER
type storage struct {
	usuarioRepo     repositories.UsuarioRepository
	funcionarioRepo repositories.FuncionarioRepository
	uow             ports.UnitOfWork
	health          ports.HealthChecker
	close           func() error
}

//	@title			AuVet API
//	@version		1.0
//	@description	API de funcionários e usuários da clínica veterinária.
//	@host			localhost:3000
//	@BasePath		/api
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting auvet backend",
		"env", cfg.Env,
		"version", "dev",
		"db_driver", cfg.Database.Driver,
	)

	store, err := openStorage(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := store.close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	// Inicializar i18n
	i18nService, err := i18n.NewService(i18n.Locales(), cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.DefaultLanguage(),
		"supported_languages", i18nService.Languages(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hub de eventos em tempo real
	hub := realtime.NewHub(logger, cfg.CORS.Origins())
	go hub.Run(ctx)

	// Inicializar services
	usuarioService := services.NewUsuarioService(store.usuarioRepo, logger)
	funcionarioService := services.NewFuncionarioService(usuarioService, store.funcionarioRepo, store.uow, hub, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.BasePath = cfg.Server.APIPrefix

	engine := router.New(router.Options{
		APIPrefix:          cfg.Server.APIPrefix,
		BaseURL:            cfg.Server.BaseURL,
		AllowedOrigins:     cfg.CORS.Origins(),
		Logger:             logger,
		I18n:               i18nService,
		FuncionarioHandler: httphandlers.NewFuncionarioHandler(funcionarioService, logger),
		UsuarioHandler:     httphandlers.NewUsuarioHandler(usuarioService, logger),
		HealthHandler:      httphandlers.NewHealthHandler(store.health, logger),
		WebSocket:          hub.ServeWS,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
			"api_prefix", cfg.Server.APIPrefix,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func openStorage(cfg *config.Config, logger ports.Logger) (*storage, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return &storage{
			usuarioRepo:     memory.NewUsuarioRepository(store),
			funcionarioRepo: memory.NewFuncionarioRepository(store),
			uow:             memory.NewUnitOfWork(store),
			health:          store,
			close:           func() error { return nil },
		}, nil
	}

	// Conectar ao banco de dados
	db, err := database.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return nil, err
	}

	return &storage{
		usuarioRepo:     database.NewUsuarioRepository(db),
		funcionarioRepo: database.NewFuncionarioRepository(db),
		uow:             database.NewUnitOfWork(db),
		health:          database.NewHealthChecker(db),
		close:           func() error { return database.Close(db) },
	}, nil
}
