package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/auvet/auvet-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware negocia o idioma da resposta entre os locales carregados
type I18nMiddleware struct {
	i18nService *i18n.Service
	supported   []string
	matcher     language.Matcher
}

// NewI18nMiddleware cria um novo middleware de i18n.
// O idioma padrão ocupa a primeira posição do matcher e vence quando nada combina.
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	supported := i18nService.Languages()
	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tags = append(tags, language.Make(lang))
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		supported:   supported,
		matcher:     language.NewMatcher(tags),
	}
}

// DetectLanguage define o idioma da requisição.
// ?lang= com um locale carregado tem prioridade; depois Accept-Language; por fim o padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if !m.i18nService.Supports(lang) {
			lang = m.negotiate(c.GetHeader("Accept-Language"))
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// ExplicitLanguageOnly fixa o idioma padrão para as rotas da API.
// Só ?lang= troca o idioma; o Accept-Language enviado automaticamente por
// navegadores é ignorado para que as mensagens de erro sejam estáveis.
func (m *I18nMiddleware) ExplicitLanguageOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if !m.i18nService.Supports(lang) {
			lang = m.supported[0]
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// negotiate escolhe o melhor locale para o header Accept-Language.
// Exemplo: "fr,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) negotiate(acceptLang string) string {
	if acceptLang == "" {
		return m.supported[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(desired) == 0 {
		return m.supported[0]
	}

	_, idx, confidence := m.matcher.Match(desired...)
	if confidence == language.No {
		return m.supported[0]
	}
	return m.supported[idx]
}
