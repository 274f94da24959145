package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/auvet/auvet-backend/internal/domain/errors"
	"github.com/auvet/auvet-backend/internal/domain/ports"
	"github.com/auvet/auvet-backend/internal/domain/valueobjects"
	"github.com/auvet/auvet-backend/internal/handlers/dto"
	"github.com/auvet/auvet-backend/internal/services"
)

// FuncionarioHandler lida com requisições HTTP relacionadas a funcionários
type FuncionarioHandler struct {
	funcionarioService *services.FuncionarioService
	logger             ports.Logger
}

// NewFuncionarioHandler cria um novo FuncionarioHandler
func NewFuncionarioHandler(funcionarioService *services.FuncionarioService, logger ports.Logger) *FuncionarioHandler {
	return &FuncionarioHandler{
		funcionarioService: funcionarioService,
		logger:             logger.With("handler", "funcionario"),
	}
}

// RegisterRoutes monta as rotas de funcionários no grupo informado
func (h *FuncionarioHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.CreateFuncionario)
	group.GET("", h.ListFuncionarios)
	group.GET("/:cpf", h.GetFuncionario)
	group.PUT("/:cpf", h.UpdateFuncionario)
	group.DELETE("/:cpf", h.DeleteFuncionario)
}

// CreateFuncionario cria um usuário e o funcionário associado
//
//	@Summary		Cria um funcionário
//	@Description	Cria o usuário e o funcionário com o mesmo CPF
//	@Tags			funcionarios
//	@Accept			json
//	@Produce		json
//	@Param			funcionario	body		dto.CreateFuncionarioRequest	true	"Dados do funcionário"
//	@Success		201			{object}	dto.APIResponse{data=dto.FuncionarioResponse}
//	@Failure		400			{object}	dto.APIResponse
//	@Failure		500			{object}	dto.APIResponse
//	@Router			/funcionarios [post]
func (h *FuncionarioHandler) CreateFuncionario(c *gin.Context) {
	var req dto.CreateFuncionarioRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create funcionario payload", "fields", invalidFields(err), "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponseI18n(c, errors.ErrCamposObrigatorios.Error()))
		return
	}

	cpf, err := valueobjects.NewCPF(req.CPF)
	if err != nil {
		h.logger.Warn("invalid create funcionario payload", "fields", []string{"CPF"}, "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponseI18n(c, errors.ErrCamposObrigatorios.Error()))
		return
	}
	req.CPF = cpf.String()

	funcionario, err := h.funcionarioService.CreateFuncionario(c.Request.Context(), req.ToUsuario(), req.ToInput())
	if err != nil {
		if errors.IsConflict(err) {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseI18n(c, conflictKey(err)))
			return
		}
		h.internalError(c, "create funcionario", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.ToFuncionarioResponse(funcionario),
		dto.T(c, "employee.created"),
	))
}

// GetFuncionario busca um funcionário por CPF
//
//	@Summary	Busca um funcionário
//	@Tags		funcionarios
//	@Produce	json
//	@Param		cpf	path		string	true	"CPF do funcionário"
//	@Success	200	{object}	dto.APIResponse{data=dto.FuncionarioResponse}
//	@Failure	400	{object}	dto.APIResponse
//	@Failure	404	{object}	dto.APIResponse
//	@Failure	500	{object}	dto.APIResponse
//	@Router		/funcionarios/{cpf} [get]
func (h *FuncionarioHandler) GetFuncionario(c *gin.Context) {
	cpf, ok := cpfParam(c)
	if !ok {
		return
	}

	funcionario, err := h.funcionarioService.GetByCPF(c.Request.Context(), cpf)
	if err != nil {
		h.internalError(c, "get funcionario", err)
		return
	}
	if funcionario == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponseI18n(c, errors.ErrFuncionarioNaoEncontrado.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToFuncionarioResponse(funcionario), ""))
}

// ListFuncionarios lista todos os funcionários
//
//	@Summary	Lista funcionários
//	@Tags		funcionarios
//	@Produce	json
//	@Success	200	{object}	dto.APIResponse{data=[]dto.FuncionarioResponse}
//	@Failure	500	{object}	dto.APIResponse
//	@Router		/funcionarios [get]
func (h *FuncionarioHandler) ListFuncionarios(c *gin.Context) {
	funcionarios, err := h.funcionarioService.GetAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "list funcionarios", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToFuncionarioResponses(funcionarios), len(funcionarios)))
}

// UpdateFuncionario altera os campos informados de um funcionário
//
//	@Summary	Atualiza um funcionário
//	@Tags		funcionarios
//	@Accept		json
//	@Produce	json
//	@Param		cpf			path		string							true	"CPF do funcionário"
//	@Param		funcionario	body		dto.UpdateFuncionarioRequest	true	"Campos a alterar"
//	@Success	200			{object}	dto.APIResponse{data=dto.FuncionarioResponse}
//	@Failure	400			{object}	dto.APIResponse
//	@Failure	404			{object}	dto.APIResponse
//	@Failure	500			{object}	dto.APIResponse
//	@Router		/funcionarios/{cpf} [put]
func (h *FuncionarioHandler) UpdateFuncionario(c *gin.Context) {
	cpf, ok := cpfParam(c)
	if !ok {
		return
	}

	var req dto.UpdateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update funcionario payload", "cpf", cpf, "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponseI18n(c, errors.ErrPayloadInvalido.Error()))
		return
	}

	funcionario, err := h.funcionarioService.Update(c.Request.Context(), cpf, req.ToUpdate())
	if err != nil {
		h.internalError(c, "update funcionario", err)
		return
	}
	if funcionario == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponseI18n(c, errors.ErrFuncionarioNaoEncontrado.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.ToFuncionarioResponse(funcionario),
		dto.T(c, "employee.updated"),
	))
}

// DeleteFuncionario remove um funcionário (o usuário associado é mantido)
//
//	@Summary	Remove um funcionário
//	@Tags		funcionarios
//	@Produce	json
//	@Param		cpf	path		string	true	"CPF do funcionário"
//	@Success	200	{object}	dto.APIResponse
//	@Failure	404	{object}	dto.APIResponse
//	@Failure	500	{object}	dto.APIResponse
//	@Router		/funcionarios/{cpf} [delete]
func (h *FuncionarioHandler) DeleteFuncionario(c *gin.Context) {
	cpf, ok := cpfParam(c)
	if !ok {
		return
	}

	deleted, err := h.funcionarioService.Delete(c.Request.Context(), cpf)
	if err != nil {
		h.internalError(c, "delete funcionario", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.ErrorResponseI18n(c, errors.ErrFuncionarioNaoEncontrado.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(dto.T(c, "employee.deleted")))
}

func (h *FuncionarioHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error("request failed", "op", op, "error", err.Error())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseI18n(c, errors.ErrInternal.Error()))
}

// cpfParam lê o CPF da rota; responde 400 quando vazio
func cpfParam(c *gin.Context) (string, bool) {
	cpf, err := valueobjects.NewCPF(c.Param("cpf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseI18n(c, errors.ErrCPFObrigatorio.Error()))
		return "", false
	}
	return cpf.String(), true
}

func conflictKey(err error) string {
	if errs.Is(err, errors.ErrFuncionarioJaCadastrado) {
		return errors.ErrFuncionarioJaCadastrado.Error()
	}
	return errors.ErrUsuarioJaCadastrado.Error()
}

// invalidFields extrai os nomes dos campos rejeitados pelo validator
func invalidFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errs.As(err, &validationErrors) {
		return nil
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return fields
}
