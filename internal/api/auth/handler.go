package auth

import (
	"context"
	"net/http"

	"gocadastro/internal/domain"
	"gocadastro/internal/pkg/httpx"
	"gocadastro/internal/pkg/logger"
)

const MsgLoginSucceeded = "Login realizado com sucesso"

// AuthService define o contrato que o Handler espera do serviço de autenticação.
type AuthService interface {
	Login(ctx context.Context, login domain.UserLogin) (domain.PublicUser, error)
}

type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// LoginHandler lida com a requisição POST /auth/login.
// @Summary Autentica um usuário por CPF ou e-mail
// @Description Confere CPF (prioritário) ou e-mail e a senha. Não emite token nem cria sessão.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.UserLogin true "Credenciais (cpf ou email, e senha)"
// @Success 200 {object} domain.UserResponse "Login realizado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Senha ausente, identificador ausente ou em formato inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 429 {object} domain.ErrorResponse "Limite de requisições excedido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var login domain.UserLogin
	if err := httpx.DecodeJSON(w, r, &login); err != nil {
		httpx.Error(w, r, h.Logger, err)
		return
	}

	user, err := h.Service.Login(r.Context(), login)
	if err != nil {
		// LoginError -> 400, UnauthorizedError -> 401
		httpx.Error(w, r, h.Logger, err)
		return
	}

	httpx.JSON(w, h.Logger, http.StatusOK, domain.UserResponse{Message: MsgLoginSucceeded, User: user})
}
