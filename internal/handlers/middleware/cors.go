package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/auvet/auvet-backend/internal/infrastructure/config"
)

// CORS configura CORS para a aplicação.
// "*" (ou lista vazia) libera todas as origens, sem credenciais.
func CORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour

	if config.AllowsAll(origins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}
