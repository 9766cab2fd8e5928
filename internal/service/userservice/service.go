package userservice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/clock"
	"gocadastro/internal/pkg/logger"
)

// Service implementa o fluxo de cadastro de usuários.
type Service struct {
	repo   domain.UserRepository
	clock  clock.Clock
	logger logger.Logger

	// mu serializa o par "busca por CPF" + "criação" para manter o CPF único
	// mesmo com requisições concorrentes.
	mu sync.Mutex
}

// NewService cria uma nova instância do Service, injetando o Repositório, o relógio e o Logger.
func NewService(repo domain.UserRepository, clk clock.Clock, logger logger.Logger) *Service {
	if clk == nil {
		clk = time.Now
	}
	return &Service{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

// Register valida o payload, garante CPF único, grava o usuário e retorna sua visão pública.
// Nada é gravado se qualquer verificação falhar.
func (s *Service) Register(ctx context.Context, reg domain.UserRegistration) (domain.PublicUser, error) {
	s.logger.Debug("Iniciando cadastro de usuário no serviço.", nil)

	now := s.clock()

	// 1. Regras de cadastro
	if violations := ValidateRegistration(reg, now); len(violations) > 0 {
		s.logger.Warn("Cadastro rejeitado por erros de validação.", map[string]interface{}{"violations": len(violations)})
		return domain.PublicUser{}, apperror.NewValidationError(violations)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. CPF único
	_, err := s.repo.FindByCPF(ctx, *reg.CPF)
	if err == nil {
		s.logger.Warn("Cadastro rejeitado: CPF já cadastrado.", nil)
		return domain.PublicUser{}, apperror.NewDuplicateCPFError()
	}
	var notFoundErr *apperror.NotFoundError
	if !errors.As(err, &notFoundErr) {
		s.logger.Error("Falha ao consultar CPF no repositório.", err)
		return domain.PublicUser{}, apperror.NewInternalError("Falha ao consultar CPF.", err)
	}

	// 3. Normalização e persistência
	created, err := s.repo.Create(ctx, newUser(reg, now))
	if err != nil {
		s.logger.Error("Falha ao gravar usuário no repositório.", err)
		return domain.PublicUser{}, apperror.NewInternalError("Falha ao gravar usuário.", err)
	}

	s.logger.Info("Usuário cadastrado com sucesso.", map[string]interface{}{"user_id": created.ID})

	// 4. Visão pública (sem senha)
	return created.Public(), nil
}

// newUser monta o registro a partir de um payload já validado.
// O estado é gravado em maiúsculas e a data de criação em UTC; o fuso de now
// só importa para a regra de idade.
func newUser(reg domain.UserRegistration, now time.Time) domain.User {
	user := domain.User{
		CPF:       *reg.CPF,
		FullName:  *reg.FullName,
		BirthDate: *reg.BirthDate,
		Secret:    *reg.Secret,
		Email:     *reg.Email,
		Address:   reg.Address,
		City:      reg.City,
		Phone:     reg.Phone,
		CreatedAt: now.UTC(),
	}
	if reg.State != nil {
		state := strings.ToUpper(*reg.State)
		user.State = &state
	}
	return user
}
