package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/auvet/auvet-backend/docs" // registra a especificação OpenAPI
	"github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/handlers/dto"
	httphandlers "github.com/auvet/auvet-backend/internal/handlers/http"
	"github.com/auvet/auvet-backend/internal/handlers/middleware"
	"github.com/auvet/auvet-backend/internal/infrastructure/i18n"
)

// Options reúne as dependências necessárias para montar o router
type Options struct {
	APIPrefix      string
	BaseURL        string
	AllowedOrigins []string

	Logger ports.Logger
	I18n   *i18n.Service

	FuncionarioHandler *httphandlers.FuncionarioHandler
	UsuarioHandler     *httphandlers.UsuarioHandler
	HealthHandler      *httphandlers.HealthHandler

	// WebSocket é opcional; quando nil a rota de eventos não é montada
	WebSocket gin.HandlerFunc
}

// New monta o engine Gin com middlewares, rotas da API e handlers de fallback
func New(opts Options) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	// Middleware global para adicionar base URL ao contexto
	engine.Use(func(c *gin.Context) {
		c.Set("base_url", opts.BaseURL)
		c.Next()
	})
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(opts.Logger))
	i18nMiddleware := middleware.NewI18nMiddleware(opts.I18n)
	engine.Use(i18nMiddleware.DetectLanguage())
	engine.Use(middleware.Recovery(opts.Logger, func(c *gin.Context) any {
		return dto.ErrorResponseI18n(c, errors.ErrInternal.Error())
	}))
	engine.Use(middleware.CORS(opts.AllowedOrigins))

	engine.GET("/health", opts.HealthHandler.Health)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(opts.APIPrefix, i18nMiddleware.ExplicitLanguageOnly())
	{
		opts.FuncionarioHandler.RegisterRoutes(api.Group("/funcionarios"))
		opts.UsuarioHandler.RegisterRoutes(api.Group("/usuarios"))

		if opts.WebSocket != nil {
			api.GET("/ws/funcionarios", opts.WebSocket)
		}
	}

	engine.NoRoute(func(c *gin.Context) {
		params := map[string]interface{}{"Method": c.Request.Method, "Path": c.Request.URL.Path}
		dto.WriteProblem(c, dto.NewProblemI18n(c, errors.ProblemTypeNotFound,
			"error.not_found.title", "error.not_found.detail", 404, params))
	})
	engine.NoMethod(func(c *gin.Context) {
		params := map[string]interface{}{"Method": c.Request.Method, "Path": c.Request.URL.Path}
		dto.WriteProblem(c, dto.NewProblemI18n(c, errors.ProblemTypeMethodNotAllowed,
			"error.method_not_allowed.title", "error.method_not_allowed.detail", 405, params))
	})

	return engine
}
