package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUsuarioJaCadastrado      = errors.New("error.user_already_exists")
	ErrFuncionarioJaCadastrado  = errors.New("error.employee_already_exists")
	ErrUsuarioNaoEncontrado     = errors.New("error.user_not_found")
	ErrFuncionarioNaoEncontrado = errors.New("error.employee_not_found")
)

// Validation errors
var (
	ErrCamposObrigatorios = errors.New("error.required_fields")
	ErrCPFObrigatorio     = errors.New("error.cpf_required")
	ErrPayloadInvalido    = errors.New("error.invalid_payload")
)

// ErrInternal é a mensagem genérica devolvida para falhas inesperadas
var ErrInternal = errors.New("error.internal")

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeNotFound         = "/problems/not-found"
	ProblemTypeMethodNotAllowed = "/problems/method-not-allowed"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Op      string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Wrap anexa a operação e uma mensagem a um erro de persistência.
// Retorna nil quando err é nil.
func Wrap(op, message string, err error) error {
	if err == nil {
		return nil
	}
	return &DomainError{Op: op, Message: message, Err: err}
}

// IsConflict verifica se o erro é um conflito de CPF já cadastrado
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsuarioJaCadastrado) || errors.Is(err, ErrFuncionarioJaCadastrado)
}
