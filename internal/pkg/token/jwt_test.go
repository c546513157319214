package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/domain"
	"gooficina/internal/pkg/token"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := token.NewService("segredo-de-teste", time.Hour)

	signed, err := svc.GenerateToken("01HZXJ8Q4V5T6Y7U8I9O0P1A2B", domain.RoleManager)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "01HZXJ8Q4V5T6Y7U8I9O0P1A2B", claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "01HZXJ8Q4V5T6Y7U8I9O0P1A2B", claims.Subject)
	assert.Equal(t, token.Issuer, claims.Issuer)
}

func TestGenerateToken_UnknownRole(t *testing.T) {
	_, err := token.NewService("segredo-de-teste", time.Hour).GenerateToken("u1", domain.UserRole("owner"))

	assert.Error(t, err)
}

// sign monta um token HS256 fora do Service, para simular emissores e payloads forjados.
func sign(t *testing.T, key string, claims token.CustomClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := token.NewService("segredo-de-teste", time.Hour)
	valid := jwt.RegisteredClaims{Issuer: token.Issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	expired, err := token.NewService("segredo-de-teste", -time.Minute).GenerateToken("u1", domain.RoleAdmin)
	require.NoError(t, err)

	otherKey, err := token.NewService("outra-chave", time.Hour).GenerateToken("u1", domain.RoleAdmin)
	require.NoError(t, err)

	foreignIssuer := valid
	foreignIssuer.Issuer = "outra-api"

	for name, tok := range map[string]string{
		"expired":      expired,
		"wrong key":    otherKey,
		"wrong issuer": sign(t, "segredo-de-teste", token.CustomClaims{UserID: "u1", Role: domain.RoleAdmin, RegisteredClaims: foreignIssuer}),
		"unknown role": sign(t, "segredo-de-teste", token.CustomClaims{UserID: "u1", Role: "root", RegisteredClaims: valid}),
		"no user":      sign(t, "segredo-de-teste", token.CustomClaims{Role: domain.RoleAdmin, RegisteredClaims: valid}),
		"garbage":      "nao.e.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(tok)
			assert.Error(t, err)
		})
	}
}
