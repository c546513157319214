package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gooficina/internal/domain"
)

// Issuer identifica os tokens emitidos pela API da oficina.
const Issuer = "GoOficina-API"

// TokenService emite e confere os JWTs dos funcionários.
type TokenService interface {
	GenerateToken(userID string, role domain.UserRole) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims carrega o funcionário e o papel dele na oficina.
type CustomClaims struct {
	UserID string          `json:"user_id"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service assina com HS256 usando uma chave compartilhada.
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// GenerateToken assina um token de acesso para o funcionário userID.
// Papéis fora de admin, manager e mechanic são recusados antes da assinatura.
func (s *Service) GenerateToken(userID string, role domain.UserRole) (string, error) {
	if _, err := domain.ParseUserRole(string(role)); err != nil {
		return "", fmt.Errorf("papel de funcionário inválido para o token: %w", err)
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, emissor e validade e devolve as claims.
// Um token com papel desconhecido ou sem funcionário é rejeitado mesmo com assinatura válida.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token não é válido")
	}

	if claims.UserID == "" {
		return nil, errors.New("token sem funcionário")
	}
	role, err := domain.ParseUserRole(string(claims.Role))
	if err != nil {
		return nil, fmt.Errorf("token com papel desconhecido: %w", err)
	}
	claims.Role = role

	return claims, nil
}
