package user

import (
	"context"
	"net/http"

	"gocadastro/internal/domain"
	"gocadastro/internal/pkg/httpx"
	"gocadastro/internal/pkg/logger"
)

// MsgUserCreated é a mensagem devolvida junto com o usuário cadastrado.
const MsgUserCreated = "Usuário cadastrado com sucesso"

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.PublicUser, error)
}

// Handler agrupa os métodos de Handler de usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse padroniza as respostas de sucesso e de erro do Handler.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		// ValidationError -> 400, ConflictError -> 409, InternalError -> 500
		httpx.Error(w, r, h.Logger, err)
		return
	}
	httpx.JSON(w, h.Logger, successStatus, data)
}

// RegisterUserHandler lida com a requisição POST /users.
// @Summary Cadastra um novo usuário
// @Description Valida os dados de cadastro, garante CPF único e grava o usuário. A senha nunca é devolvida.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Dados de cadastro"
// @Success 201 {object} domain.UserResponse "Usuário cadastrado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Erros de validação ou payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Já existe um usuário com este CPF"
// @Failure 429 {object} domain.ErrorResponse "Limite de requisições excedido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg domain.UserRegistration
	if err := httpx.DecodeJSON(w, r, &reg); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// 1. Chamar o Serviço (validação, unicidade do CPF e persistência)
	newUser, err := h.Service.Register(ctx, reg)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// 2. Resposta de Sucesso (201 Created), já na visão pública (sem senha)
	h.handleServiceResponse(w, r, domain.UserResponse{Message: MsgUserCreated, User: newUser}, nil, http.StatusCreated)
}
