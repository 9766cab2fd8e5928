package userrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// UserRepository implementa domain.UserRepository em memória.
// Os registros só são acrescentados: não há atualização nem remoção, e os IDs
// são sequenciais a partir de 1, nunca reutilizados.
type UserRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int64
	logger logger.Logger
}

// NewUserRepository cria um repositório vazio. O tempo de vida dos dados é o da instância.
func NewUserRepository(logger logger.Logger) *UserRepository {
	return &UserRepository{
		nextID: 1,
		logger: logger,
	}
}

// FindByCPF busca um usuário pelo CPF (comparação exata).
func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, apperror.NewInternalError("busca por CPF cancelada", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.CPF == cpf {
			return clone(u), nil
		}
	}

	r.logger.Debug("Usuário não encontrado por CPF.", nil)
	return domain.User{}, apperror.NewNotFoundError("Usuário com o CPF informado não encontrado")
}

// FindByEmail busca um usuário pelo e-mail, sem diferenciar maiúsculas de minúsculas.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, apperror.NewInternalError("busca por e-mail cancelada", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}

	r.logger.Debug("Usuário não encontrado por e-mail.", nil)
	return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com email '%s' não encontrado", email))
}

// Create atribui o próximo ID, acrescenta o usuário e retorna o registro gravado
// (incluindo a senha: a remoção dela é responsabilidade de quem chama).
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, apperror.NewInternalError("criação de usuário cancelada", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user = clone(user)
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)

	r.logger.Debug("Usuário salvo no repositório.", map[string]interface{}{"user_id": user.ID})
	return clone(user), nil
}

// clone copia os campos opcionais para que nenhum ponteiro do registro armazenado
// escape do repositório.
func clone(u domain.User) domain.User {
	u.Address = copyString(u.Address)
	u.City = copyString(u.City)
	u.State = copyString(u.State)
	u.Phone = copyString(u.Phone)
	return u
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
