package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header que transporta o identificador da requisição
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave usada para armazenar o identificador no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
