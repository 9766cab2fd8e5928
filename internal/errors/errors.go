package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"gocadastro/internal/domain"
)

// Kind identifica o tipo de falha de forma estável (usado como "category" na resposta HTTP).
type Kind string

const (
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindDuplicateCPF       Kind = "DUPLICATE_CPF"
	KindMissingCredential  Kind = "MISSING_CREDENTIAL"
	KindMissingIdentifier  Kind = "MISSING_IDENTIFIER"
	KindInvalidFormat      Kind = "INVALID_FORMAT"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindInvalidPayload     Kind = "INVALID_PAYLOAD"
	KindNotFound           Kind = "NOT_FOUND"
	KindMethodNotAllowed   Kind = "METHOD_NOT_ALLOWED"
	KindRateLimited        Kind = "RATE_LIMITED"
	KindInternal           Kind = "INTERNAL_ERROR"
)

// AppError é a interface central para todos os erros customizados do serviço.
// Ela permite que o Handler acesse o tipo, a mensagem pública e o status HTTP do erro.
type AppError interface {
	Error() string     // Implementa a interface error padrão do Go
	Kind() Kind        // Tipo do erro (e.g., VALIDATION_FAILED, DUPLICATE_CPF)
	Category() string  // Kind em formato string, exposto no corpo da resposta
	HTTPStatus() int   // Código HTTP sugerido para o Handler
	Message() string   // Mensagem segura para o cliente
	Details() []string // Lista de detalhes (apenas para erros de validação)
	Unwrap() error     // Permite encapsular erros subjacentes (original error)
}

// --- Erros de Cadastro ---

// ValidationError carrega a lista ordenada de violações das regras de cadastro.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Erro de Validação: %s", strings.Join(e.Violations, "; "))
}
func (e *ValidationError) Kind() Kind        { return KindValidationFailed }
func (e *ValidationError) Category() string  { return string(e.Kind()) }
func (e *ValidationError) HTTPStatus() int   { return http.StatusBadRequest } // 400
func (e *ValidationError) Details() []string { return e.Violations }
func (e *ValidationError) Unwrap() error     { return nil }

// Message retorna a primeira violação; a lista completa vai em Details.
func (e *ValidationError) Message() string {
	if len(e.Violations) == 0 {
		return "Erros de validação"
	}
	return e.Violations[0]
}

// NewValidationError cria um novo erro de validação a partir das violações encontradas.
func NewValidationError(violations []string) AppError {
	return &ValidationError{Violations: violations}
}

// ConflictError representa um conflito de estado: já existe usuário com o CPF informado.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string     { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Kind() Kind        { return KindDuplicateCPF }
func (e *ConflictError) Category() string  { return string(e.Kind()) }
func (e *ConflictError) HTTPStatus() int   { return http.StatusConflict } // 409
func (e *ConflictError) Message() string   { return e.Msg }
func (e *ConflictError) Details() []string { return nil }
func (e *ConflictError) Unwrap() error     { return nil }

// NewDuplicateCPFError cria o erro de CPF já cadastrado.
func NewDuplicateCPFError() AppError {
	return &ConflictError{Msg: "Já existe um usuário com este CPF."}
}

// --- Erros de Login ---

// LoginError representa uma entrada de login malformada (senha ausente,
// identificador ausente ou em formato inválido).
type LoginError struct {
	kind Kind
	Msg  string
}

func (e *LoginError) Error() string     { return fmt.Sprintf("Login inválido: %s", e.Msg) }
func (e *LoginError) Kind() Kind        { return e.kind }
func (e *LoginError) Category() string  { return string(e.kind) }
func (e *LoginError) HTTPStatus() int   { return http.StatusBadRequest } // 400
func (e *LoginError) Message() string   { return e.Msg }
func (e *LoginError) Details() []string { return nil }
func (e *LoginError) Unwrap() error     { return nil }

func NewMissingCredentialError() AppError {
	return &LoginError{kind: KindMissingCredential, Msg: "Senha é obrigatória."}
}

func NewMissingIdentifierError() AppError {
	return &LoginError{kind: KindMissingIdentifier, Msg: "Informe CPF ou e-mail para realizar login."}
}

// NewInvalidFormatError cria o erro de identificador (CPF ou e-mail) em formato inválido.
func NewInvalidFormatError(msg string) AppError {
	return &LoginError{kind: KindInvalidFormat, Msg: msg}
}

// UnauthorizedError é a falha de autenticação. A mesma mensagem é usada para
// "usuário inexistente" e "senha incorreta".
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string     { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Kind() Kind        { return KindInvalidCredentials }
func (e *UnauthorizedError) Category() string  { return string(e.Kind()) }
func (e *UnauthorizedError) HTTPStatus() int   { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Message() string   { return e.Msg }
func (e *UnauthorizedError) Details() []string { return nil }
func (e *UnauthorizedError) Unwrap() error     { return nil }

func NewInvalidCredentialsError() AppError {
	return &UnauthorizedError{Msg: "Credenciais inválidas."}
}

// --- Erros de Transporte ---

// PayloadError representa um corpo de requisição estruturalmente inválido
// (JSON malformado, campo com tipo diferente de texto, etc.).
type PayloadError struct {
	Msg string
}

func (e *PayloadError) Error() string     { return fmt.Sprintf("Payload inválido: %s", e.Msg) }
func (e *PayloadError) Kind() Kind        { return KindInvalidPayload }
func (e *PayloadError) Category() string  { return string(e.Kind()) }
func (e *PayloadError) HTTPStatus() int   { return http.StatusBadRequest } // 400
func (e *PayloadError) Message() string   { return e.Msg }
func (e *PayloadError) Details() []string { return nil }
func (e *PayloadError) Unwrap() error     { return nil }

func NewPayloadError(msg string) AppError {
	return &PayloadError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string     { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Kind() Kind        { return KindNotFound }
func (e *NotFoundError) Category() string  { return string(e.Kind()) }
func (e *NotFoundError) HTTPStatus() int   { return http.StatusNotFound } // 404
func (e *NotFoundError) Message() string   { return e.Msg }
func (e *NotFoundError) Details() []string { return nil }
func (e *NotFoundError) Unwrap() error     { return nil }

func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

type MethodNotAllowedError struct {
	Method string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("Método não permitido: %s", e.Method)
}
func (e *MethodNotAllowedError) Kind() Kind        { return KindMethodNotAllowed }
func (e *MethodNotAllowedError) Category() string  { return string(e.Kind()) }
func (e *MethodNotAllowedError) HTTPStatus() int   { return http.StatusMethodNotAllowed } // 405
func (e *MethodNotAllowedError) Message() string   { return "Método não permitido" }
func (e *MethodNotAllowedError) Details() []string { return nil }
func (e *MethodNotAllowedError) Unwrap() error     { return nil }

func NewMethodNotAllowedError(method string) AppError {
	return &MethodNotAllowedError{Method: method}
}

// RateLimitError indica que o cliente excedeu o limite de requisições.
type RateLimitError struct {
	Key string
}

func (e *RateLimitError) Error() string     { return fmt.Sprintf("Limite de requisições excedido: %s", e.Key) }
func (e *RateLimitError) Kind() Kind        { return KindRateLimited }
func (e *RateLimitError) Category() string  { return string(e.Kind()) }
func (e *RateLimitError) HTTPStatus() int   { return http.StatusTooManyRequests } // 429
func (e *RateLimitError) Message() string   { return "Limite de requisições excedido. Tente novamente em instantes." }
func (e *RateLimitError) Details() []string { return nil }
func (e *RateLimitError) Unwrap() error     { return nil }

func NewRateLimitError(key string) AppError {
	return &RateLimitError{Key: key}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Erro Interno: %s", e.Msg)
	}
	return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
}
func (e *InternalError) Kind() Kind        { return KindInternal }
func (e *InternalError) Category() string  { return string(e.Kind()) }
func (e *InternalError) HTTPStatus() int   { return http.StatusInternalServerError } // 500
func (e *InternalError) Message() string   { return "Erro interno do servidor" }
func (e *InternalError) Details() []string { return nil }
func (e *InternalError) Unwrap() error     { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Helpers ---

// KindOf retorna o Kind de um erro, percorrendo a cadeia de Unwrap.
// Erros que não implementam AppError são tratados como KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind()
	}
	return KindInternal
}

// MapToResponse traduz um erro para o código HTTP e o corpo de resposta padronizado.
func MapToResponse(err error) (int, domain.ErrorResponse) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		return status, domain.ErrorResponse{
			Code:     status,
			Category: appErr.Category(),
			Message:  appErr.Message(),
			Details:  appErr.Details(),
		}
	}

	// Erro não tipado: tratado como erro interno genérico, sem vazar detalhes.
	return http.StatusInternalServerError, domain.ErrorResponse{
		Code:     http.StatusInternalServerError,
		Category: "UNKNOWN_ERROR",
		Message:  "Ocorreu um erro inesperado.",
	}
}
