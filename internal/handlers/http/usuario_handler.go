package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/handlers/dto"
	"github.com/auvet/auvet-backend/internal/services"
)

// UsuarioHandler expõe a consulta de usuários (somente leitura)
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
	logger         ports.Logger
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService, logger ports.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
		logger:         logger.With("handler", "usuario"),
	}
}

// RegisterRoutes monta as rotas de usuários no grupo informado
func (h *UsuarioHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.ListUsuarios)
	group.GET("/:cpf", h.GetUsuario)
}

// GetUsuario busca um usuário por CPF
//
//	@Summary	Busca um usuário
//	@Tags		usuarios
//	@Produce	json
//	@Param		cpf	path		string	true	"CPF do usuário"
//	@Success	200	{object}	dto.APIResponse{data=dto.UsuarioResponse}
//	@Failure	404	{object}	dto.APIResponse
//	@Router		/usuarios/{cpf} [get]
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	cpf, ok := cpfParam(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.GetByCPF(c.Request.Context(), cpf)
	if err != nil {
		h.logger.Error("request failed", "op", "get usuario", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseI18n(c, errors.ErrInternal.Error()))
		return
	}
	if usuario == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponseI18n(c, errors.ErrUsuarioNaoEncontrado.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToUsuarioResponse(usuario), ""))
}

// ListUsuarios lista todos os usuários
//
//	@Summary	Lista usuários
//	@Tags		usuarios
//	@Produce	json
//	@Success	200	{object}	dto.APIResponse{data=[]dto.UsuarioResponse}
//	@Router		/usuarios [get]
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	usuarios, err := h.usuarioService.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("request failed", "op", "list usuarios", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseI18n(c, errors.ErrInternal.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToUsuarioResponses(usuarios), len(usuarios)))
}
