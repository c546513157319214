package userservice

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
)

// MinPasswordLength é o tamanho mínimo de senha aceito no cadastro.
const MinPasswordLength = 8

// UserService cadastra e autentica os funcionários da oficina.
type UserService struct {
	UserRepo domain.UserRepository
	TokenSvc TokenService
	logger   logger.Logger
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, role domain.UserRole) (string, error)
}

// NewService cria uma nova instância do UserService.
func NewService(repo domain.UserRepository, tokenSvc TokenService, log logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		logger:   log,
	}
}

// Register é o autocadastro público: o funcionário sempre entra como mecânico
// e o campo Role do payload é ignorado.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	return s.register(ctx, registration, domain.RoleMechanic)
}

// RegisterStaff cadastra um funcionário com o papel informado no payload.
// Só deve ser exposto atrás de autenticação de admin; sem papel vira mecânico.
func (s *UserService) RegisterStaff(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	role := domain.RoleMechanic
	if strings.TrimSpace(registration.Role) != "" {
		parsed, err := domain.ParseUserRole(registration.Role)
		if err != nil {
			return domain.User{}, err
		}
		role = parsed
	}
	return s.register(ctx, registration, role)
}

// register valida o payload, faz o hash da senha e persiste o funcionário com role.
func (s *UserService) register(ctx context.Context, registration domain.UserRegistration, role domain.UserRole) (domain.User, error) {
	// 1. Validação
	name := strings.TrimSpace(registration.Name)
	email := strings.ToLower(strings.TrimSpace(registration.Email))
	if name == "" {
		return domain.User{}, apperror.NewKindValidationError("user", "Nome é obrigatório.")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return domain.User{}, apperror.NewKindValidationError("user", "Email inválido.")
	}
	if utf8.RuneCountInString(registration.Password) < MinPasswordLength {
		return domain.User{}, apperror.NewKindValidationError("user",
			fmt.Sprintf("A senha deve ter pelo menos %d caracteres.", MinPasswordLength))
	}

	// 2. Hashing da Senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// 3. Persistência; e-mail duplicado chega como ConflictError do repositório
	user, err := s.UserRepo.Save(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		if apperror.IsConflict(err) {
			return domain.User{}, apperror.NewConflictErrorWithCause(
				fmt.Sprintf("O email '%s' já está em uso.", email), err)
		}
		s.logger.Error("Falha ao registrar funcionário.", err)
		return domain.User{}, err
	}

	s.logger.Info("Funcionário registrado.", map[string]interface{}{"user_id": user.ID, "role": string(user.Role)})
	return user, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	// 1. Validação Básica
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	// 2. Buscar Usuário pelo Email
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		// Mesmo erro da senha incorreta: não revela quais e-mails existem
		s.logger.Debug("Login com e-mail desconhecido.", map[string]interface{}{"email": email})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// 3. Comparar Senhas
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("Login com senha incorreta.", map[string]interface{}{"user_id": user.ID})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// 4. Gerar JWT
	tokenString, err := s.TokenSvc.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Falha ao gerar token.", err)
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	return tokenString, nil
}
