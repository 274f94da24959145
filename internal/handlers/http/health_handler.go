package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auvet/auvet-backend/internal/domain/ports"
)

const healthTimeout = 2 * time.Second

// HealthResponse descreve o estado do serviço e do banco
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler verifica a conectividade com o armazenamento
type HealthHandler struct {
	checker ports.HealthChecker
	logger  ports.Logger
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(checker ports.HealthChecker, logger ports.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Health responde 200 quando o banco responde ao ping e 500 caso contrário
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	500	{object}	HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Error("health check failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, HealthResponse{Status: "ERROR", Database: "Disconnected"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "OK", Database: "Connected"})
}
