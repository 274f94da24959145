package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// APIResponse é o envelope padrão de todas as respostas da API
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// NewSuccessResponse cria um envelope de sucesso com dados
func NewSuccessResponse(data any, message string) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewListResponse cria um envelope de sucesso para listagens; count é sempre emitido
func NewListResponse(data any, count int) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	}
}

// NewMessageResponse cria um envelope de sucesso sem dados
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse cria um envelope de erro
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}

// ErrorResponseI18n cria um envelope de erro traduzindo a chave informada
func ErrorResponseI18n(c *gin.Context, key string, params ...map[string]interface{}) APIResponse {
	return NewErrorResponse(T(c, key, params...))
}

// NewProblemI18n cria um problem document RFC 7807 usando i18n
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *problems.Problem {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return problem
}

// WriteProblem escreve o problem document com o media type application/problem+json
func WriteProblem(c *gin.Context, problem *problems.Problem) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(problem.Status, problem)
}
