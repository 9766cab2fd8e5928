package authservice

import (
	"context"
	"crypto/subtle"
	"errors"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/validator"
)

const (
	MsgInvalidCPFFormat   = "CPF deve conter exatamente 11 dígitos numéricos."
	MsgInvalidEmailFormat = "E-mail deve possuir um formato válido."
)

// UserFinder define o contrato de leitura que o login espera do repositório.
type UserFinder interface {
	FindByCPF(ctx context.Context, cpf string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service implementa o fluxo de login por CPF ou e-mail.
// Não cria sessão nem token: apenas confere as credenciais.
type Service struct {
	repo   UserFinder
	logger logger.Logger
}

// NewService cria uma nova instância do Service de autenticação.
func NewService(repo UserFinder, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func filled(v *string) bool {
	return v != nil && *v != ""
}

// Login confere as credenciais e retorna a visão pública do usuário.
// O CPF tem prioridade sobre o e-mail quando ambos são informados.
func (s *Service) Login(ctx context.Context, login domain.UserLogin) (domain.PublicUser, error) {
	s.logger.Debug("Iniciando login no serviço.", nil)

	// 1. Senha obrigatória
	if !filled(login.Secret) {
		s.logger.Warn("Login rejeitado: senha ausente.", nil)
		return domain.PublicUser{}, apperror.NewMissingCredentialError()
	}

	// 2. Escolha do identificador
	var (
		user domain.User
		err  error
		by   string
	)
	switch {
	case filled(login.CPF):
		if !validator.IsValidCPF(*login.CPF) {
			s.logger.Warn("Login rejeitado: CPF em formato inválido.", nil)
			return domain.PublicUser{}, apperror.NewInvalidFormatError(MsgInvalidCPFFormat)
		}
		by = "cpf"
		user, err = s.repo.FindByCPF(ctx, *login.CPF)
	case filled(login.Email):
		if !validator.IsValidEmail(*login.Email) {
			s.logger.Warn("Login rejeitado: e-mail em formato inválido.", nil)
			return domain.PublicUser{}, apperror.NewInvalidFormatError(MsgInvalidEmailFormat)
		}
		by = "email"
		user, err = s.repo.FindByEmail(ctx, *login.Email)
	default:
		s.logger.Warn("Login rejeitado: nenhum identificador informado.", nil)
		return domain.PublicUser{}, apperror.NewMissingIdentifierError()
	}

	// 3. Usuário inexistente e senha incorreta têm o mesmo resultado
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.logger.Warn("Login rejeitado: credenciais inválidas.", map[string]interface{}{"by": by})
			return domain.PublicUser{}, apperror.NewInvalidCredentialsError()
		}
		s.logger.Error("Falha ao buscar usuário no repositório.", err)
		return domain.PublicUser{}, apperror.NewInternalError("Falha ao buscar usuário.", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Secret), []byte(*login.Secret)) != 1 {
		s.logger.Warn("Login rejeitado: credenciais inválidas.", map[string]interface{}{"by": by})
		return domain.PublicUser{}, apperror.NewInvalidCredentialsError()
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID, "by": by})

	// 4. Visão pública (sem senha)
	return user.Public(), nil
}
