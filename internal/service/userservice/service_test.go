package userservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
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
	"gocadastro/internal/service/userservice"
)

// MockUserRepository é uma implementação mock da interface domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByCPF(ctx context.Context, cpf string) (domain.User, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func newTestLogger() logger.Logger {
	return logger.NewLoggerWithWriter("debug", io.Discard)
}

func newMemoryService() *userservice.Service {
	log := newTestLogger()
	return userservice.NewService(userrepo.NewUserRepository(log), clock.Fixed(today), log)
}

// --- Testes com repositório mock ---

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, clock.Fixed(today), newTestLogger())

	reg := validRegistration()
	reg.State = ptr("sp")

	notFound := apperror.NewNotFoundError("Usuário não encontrado")
	mockRepo.On("FindByCPF", mock.Anything, "01234567890").Return(domain.User{}, notFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.CPF == "01234567890" && u.Secret == "abc12" && u.State != nil && *u.State == "SP" && u.CreatedAt.Equal(today)
	})).Return(domain.User{
		ID:        1,
		CPF:       "01234567890",
		FullName:  "Maria Silva",
		BirthDate: "10/03/1995",
		Secret:    "abc12",
		Email:     "maria@example.com",
		State:     ptr("SP"),
		CreatedAt: today,
	}, nil)

	result, err := svc.Register(context.Background(), reg)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "Maria Silva", result.FullName)
	assert.Equal(t, "SP", *result.State)
	assert.Equal(t, today, result.CreatedAt)
	mockRepo.AssertExpectations(t)
}

func TestRegister_Fail_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, clock.Fixed(today), newTestLogger())

	reg := validRegistration()
	reg.FullName = ptr("Ab")

	_, err := svc.Register(context.Background(), reg)

	require.Error(t, err)
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{userservice.MsgInvalidName}, validationErr.Violations)
	assert.Equal(t, apperror.KindValidationFailed, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Fail_DuplicateCPF(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, clock.Fixed(today), newTestLogger())

	mockRepo.On("FindByCPF", mock.Anything, "01234567890").Return(domain.User{ID: 7, CPF: "01234567890"}, nil)

	_, err := svc.Register(context.Background(), validRegistration())

	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, apperror.KindDuplicateCPF, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Fail_LookupError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, clock.Fixed(today), newTestLogger())

	repoErr := errors.New("falha inesperada")
	mockRepo.On("FindByCPF", mock.Anything, "01234567890").Return(domain.User{}, repoErr)

	_, err := svc.Register(context.Background(), validRegistration())

	require.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.ErrorIs(t, err, repoErr)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Fail_CreateError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := userservice.NewService(mockRepo, clock.Fixed(today), newTestLogger())

	mockRepo.On("FindByCPF", mock.Anything, "01234567890").Return(domain.User{}, apperror.NewNotFoundError("x"))
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, errors.New("sem espaço"))

	_, err := svc.Register(context.Background(), validRegistration())

	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	mockRepo.AssertExpectations(t)
}

// --- Testes com o repositório em memória ---

func TestRegister_EndToEnd(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	first, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "senha")
	assert.NotContains(t, string(raw), "abc12")

	dup := validRegistration()
	dup.FullName = ptr("João Silva")
	dup.Email = ptr("joao@example.com")
	_, err = svc.Register(ctx, dup)
	assert.Equal(t, apperror.KindDuplicateCPF, apperror.KindOf(err))
}

func TestRegister_IDsIncrease(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	var last int64
	for _, cpf := range []string{"00000000001", "00000000002", "00000000003"} {
		reg := validRegistration()
		reg.CPF = ptr(cpf)

		user, err := svc.Register(ctx, reg)
		require.NoError(t, err)
		assert.Greater(t, user.ID, last)
		last = user.ID
	}
	assert.Equal(t, int64(3), last)
}

func TestRegister_RejectionDoesNotConsumeID(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	bad := validRegistration()
	bad.Email = ptr("invalido")
	_, err := svc.Register(ctx, bad)
	require.Error(t, err)

	user, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestRegister_RepeatedRejectionIsIdentical(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	bad := validRegistration()
	bad.CPF = ptr("abc")
	bad.Phone = ptr("123")

	var first []string
	for i := 0; i < 3; i++ {
		_, err := svc.Register(ctx, bad)
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		if first == nil {
			first = validationErr.Violations
			continue
		}
		assert.Equal(t, first, validationErr.Violations)
	}
	assert.Equal(t, []string{userservice.MsgInvalidCPF, userservice.MsgInvalidPhone}, first)
}

func TestRegister_ConcurrentSameCPF(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	const workers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, validRegistration())
			mu.Lock()
			defer mu.Unlock()
			switch apperror.KindOf(err) {
			case apperror.KindDuplicateCPF:
				duplicates++
			default:
				if err == nil {
					successes++
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)
}

func TestRegister_CreatedAtIsStoredInUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	// 23h do dia 17 em Brasília já é dia 18 em UTC.
	local := time.Date(2026, time.October, 17, 23, 0, 0, 0, brt)
	log := newTestLogger()
	svc := userservice.NewService(userrepo.NewUserRepository(log), clock.Fixed(local), log)

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, time.UTC, user.CreatedAt.Location())
	assert.True(t, user.CreatedAt.Equal(local))

	out, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"criadoEm":"2026-10-18T02:00:00Z"`)
}
