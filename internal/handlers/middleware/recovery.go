package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auvet/auvet-backend/internal/domain/ports"
)

// Recovery converte panics em 500; body monta o corpo da resposta
func Recovery(logger ports.Logger, body func(c *gin.Context) any) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"panic", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDContextKey),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, body(c))
	})
}
