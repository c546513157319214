package userservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/memoryrepo"
	"gooficina/internal/service/userservice"
)

// MockTokenService é uma implementação mock de userservice.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, role domain.UserRole) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

// MockUserRepository cobre os caminhos de erro do banco.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func validRegistration() domain.UserRegistration {
	return domain.UserRegistration{Name: "Zé Mecânico", Email: "Ze@Oficina.com", Password: "s3nha-forte"}
}

func TestRegister_Success(t *testing.T) {
	repo := memoryrepo.NewUserRepository()
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNopLogger())

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.True(t, domain.IsValidID(user.ID))
	assert.Equal(t, "ze@oficina.com", user.Email)
	assert.Equal(t, domain.RoleMechanic, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nha-forte")))
}

func TestRegister_ValidationErrors(t *testing.T) {
	svc := userservice.NewService(memoryrepo.NewUserRepository(), new(MockTokenService), logger.NewNopLogger())

	noName := validRegistration()
	noName.Name = " "
	badEmail := validRegistration()
	badEmail.Email = "ze@"
	shortPassword := validRegistration()
	shortPassword.Password = "1234567"

	tests := []struct {
		name string
		in   domain.UserRegistration
		kind string
	}{
		{"name", noName, "user"},
		{"email", badEmail, "user"},
		{"password", shortPassword, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			var vErr *apperror.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.kind, vErr.Kind)
		})
	}
}

func TestRegister_IgnoresRequestedRole(t *testing.T) {
	svc := userservice.NewService(memoryrepo.NewUserRepository(), new(MockTokenService), logger.NewNopLogger())

	for _, role := range []string{"admin", "manager", "owner"} {
		reg := validRegistration()
		reg.Email = role + "@oficina.com"
		reg.Role = role

		user, err := svc.Register(context.Background(), reg)

		require.NoError(t, err, role)
		assert.Equal(t, domain.RoleMechanic, user.Role, role)
	}
}

func TestRegisterStaff(t *testing.T) {
	svc := userservice.NewService(memoryrepo.NewUserRepository(), new(MockTokenService), logger.NewNopLogger())

	t.Run("role informado", func(t *testing.T) {
		reg := validRegistration()
		reg.Role = " Manager "
		user, err := svc.RegisterStaff(context.Background(), reg)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, user.Role)
	})

	t.Run("sem role", func(t *testing.T) {
		reg := validRegistration()
		reg.Email = "ana@oficina.com"
		user, err := svc.RegisterStaff(context.Background(), reg)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMechanic, user.Role)
	})

	t.Run("role desconhecido", func(t *testing.T) {
		reg := validRegistration()
		reg.Email = "bia@oficina.com"
		reg.Role = "owner"
		_, err := svc.RegisterStaff(context.Background(), reg)
		var vErr *apperror.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "user_role", vErr.Kind)
	})
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := userservice.NewService(memoryrepo.NewUserRepository(), new(MockTokenService), logger.NewNopLogger())
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegistration())

	assert.True(t, apperror.IsConflict(err))
}

func TestRegister_RepositoryFailure(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNopLogger())
	dbErr := apperror.NewDBError("falha ao inserir usuário", errors.New("timeout"))
	repo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).Return(domain.User{}, dbErr)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	repo := memoryrepo.NewUserRepository()
	tokens := new(MockTokenService)
	svc := userservice.NewService(repo, tokens, logger.NewNopLogger())

	reg := validRegistration()
	reg.Role = "manager"
	user, err := svc.RegisterStaff(context.Background(), reg)
	require.NoError(t, err)

	tokens.On("GenerateToken", user.ID, domain.RoleManager).Return("jwt-assinado", nil).Once()

	t.Run("success", func(t *testing.T) {
		tok, err := svc.Login(context.Background(), " ZE@oficina.com ", "s3nha-forte")
		require.NoError(t, err)
		assert.Equal(t, "jwt-assinado", tok)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ze@oficina.com", "errada")
		assert.Equal(t, 401, statusOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ninguem@oficina.com", "s3nha-forte")
		assert.Equal(t, 401, statusOf(err))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "")
		assert.Equal(t, 401, statusOf(err))
	})

	tokens.AssertExpectations(t)
}

func statusOf(err error) int {
	status, _, _ := apperror.MapToHTTPStatus(err)
	return status
}
