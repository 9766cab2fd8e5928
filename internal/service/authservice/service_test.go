package authservice_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/clock"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/repository/userrepo"
	"gocadastro/internal/service/authservice"
	"gocadastro/internal/service/userservice"
)

// MockUserFinder é uma implementação mock da interface authservice.UserFinder
type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByCPF(ctx context.Context, cpf string) (domain.User, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserFinder) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func ptr(s string) *string { return &s }

func newTestLogger() logger.Logger {
	return logger.NewLoggerWithWriter("debug", io.Discard)
}

var stored = domain.User{
	ID:        1,
	CPF:       "01234567890",
	FullName:  "Maria Silva",
	BirthDate: "10/03/1995",
	Secret:    "abc12",
	Email:     "maria@example.com",
}

func TestLogin_MissingSecret(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())

	for _, secret := range []*string{nil, ptr("")} {
		_, err := svc.Login(context.Background(), domain.UserLogin{CPF: ptr("01234567890"), Secret: secret})
		assert.Equal(t, apperror.KindMissingCredential, apperror.KindOf(err))
	}
	repo.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())

	_, err := svc.Login(context.Background(), domain.UserLogin{CPF: ptr(""), Secret: ptr("abc12")})

	assert.Equal(t, apperror.KindMissingIdentifier, apperror.KindOf(err))
}

func TestLogin_InvalidCPFFormat(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())

	_, err := svc.Login(context.Background(), domain.UserLogin{CPF: ptr("123"), Email: ptr("maria@example.com"), Secret: ptr("abc12")})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidFormat, apperror.KindOf(err))
	var appErr apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, authservice.MsgInvalidCPFFormat, appErr.Message())
	// CPF tem prioridade: o e-mail válido não é usado.
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())

	_, err := svc.Login(context.Background(), domain.UserLogin{Email: ptr("maria"), Secret: ptr("abc12")})

	var appErr apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindInvalidFormat, appErr.Kind())
	assert.Equal(t, authservice.MsgInvalidEmailFormat, appErr.Message())
}

func TestLogin_ByCPF_Success(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())
	repo.On("FindByCPF", mock.Anything, "01234567890").Return(stored, nil)

	user, err := svc.Login(context.Background(), domain.UserLogin{CPF: ptr("01234567890"), Email: ptr("outra@example.com"), Secret: ptr("abc12")})

	require.NoError(t, err)
	assert.Equal(t, stored.Public(), user)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLogin_ByEmail_Success(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())
	repo.On("FindByEmail", mock.Anything, "MARIA@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), domain.UserLogin{Email: ptr("MARIA@example.com"), Secret: ptr("abc12")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	repo.AssertExpectations(t)
}

func TestLogin_WrongSecretAndUnknownUserAreIndistinguishable(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())
	repo.On("FindByCPF", mock.Anything, "01234567890").Return(stored, nil)
	repo.On("FindByCPF", mock.Anything, "99999999999").Return(domain.User{}, apperror.NewNotFoundError("x"))

	_, wrongSecret := svc.Login(context.Background(), domain.UserLogin{CPF: ptr("01234567890"), Secret: ptr("wrong")})
	_, unknown := svc.Login(context.Background(), domain.UserLogin{CPF: ptr("99999999999"), Secret: ptr("abc12")})

	require.Error(t, wrongSecret)
	require.Error(t, unknown)
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(wrongSecret))
	assert.Equal(t, wrongSecret, unknown)
}

func TestLogin_RepoError(t *testing.T) {
	repo := new(MockUserFinder)
	svc := authservice.NewService(repo, newTestLogger())
	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(domain.User{}, errors.New("falha"))

	_, err := svc.Login(context.Background(), domain.UserLogin{Email: ptr("maria@example.com"), Secret: ptr("abc12")})

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestLogin_AfterRegistration(t *testing.T) {
	log := newTestLogger()
	repo := userrepo.NewUserRepository(log)
	today := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	users := userservice.NewService(repo, clock.Fixed(today), log)
	auth := authservice.NewService(repo, log)
	ctx := context.Background()

	registered, err := users.Register(ctx, domain.UserRegistration{
		CPF:           ptr("01234567890"),
		FullName:      ptr("Maria Silva"),
		BirthDate:     ptr("10/03/1995"),
		Secret:        ptr("abc12"),
		ConfirmSecret: ptr("abc12"),
		Email:         ptr("maria@example.com"),
	})
	require.NoError(t, err)

	got, err := auth.Login(ctx, domain.UserLogin{CPF: ptr("01234567890"), Secret: ptr("abc12")})
	require.NoError(t, err)
	assert.Equal(t, registered, got)

	_, err = auth.Login(ctx, domain.UserLogin{CPF: ptr("01234567890"), Secret: ptr("wrong")})
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))

	_, err = auth.Login(ctx, domain.UserLogin{CPF: ptr("11111111111"), Secret: ptr("abc12")})
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))

	_, err = auth.Login(ctx, domain.UserLogin{Email: ptr("Maria@Example.com"), Secret: ptr("abc12")})
	assert.NoError(t, err)

	// Senha diferindo só em maiúsculas não é aceita.
	_, err = auth.Login(ctx, domain.UserLogin{CPF: ptr("01234567890"), Secret: ptr("ABC12")})
	assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
}
