package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ponto/backend/internal/auth"
	"ponto/backend/internal/commands"
	"ponto/backend/internal/repository/postgres/user"
)

const testSecret = "test-secret"

// TestGenToken_ParValido gera o par de tokens e valida o access token com a
// mesma chave usada pelo middleware.
func TestGenToken_ParValido(t *testing.T) {
	accessToken, refreshToken, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleEmployee}, testSecret)

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := auth.New(testSecret).ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)
	assert.Equal(t, auth.RoleEmployee, claims.Role)
	assert.Equal(t, auth.TypeAccess, claims.Type)
}

// TestValidateToken_RefreshRecusado garante que o refresh token não serve
// como credencial de acesso.
func TestValidateToken_RefreshRecusado(t *testing.T) {
	_, refreshToken, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleEmployee}, testSecret)
	assert.NoError(t, err)

	_, err = auth.New(testSecret).ValidateToken(refreshToken)
	assert.Error(t, err)
}

// TestVerifyTokens_Sucesso aceita um par coerente e devolve as claims.
func TestVerifyTokens_Sucesso(t *testing.T) {
	accessToken, refreshToken, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleAdmin}, testSecret)
	assert.NoError(t, err)

	accessClaims, refreshClaims, err := commands.VerifyTokens(accessToken, refreshToken, testSecret)

	assert.NoError(t, err)
	assert.Equal(t, 7, accessClaims.UserId)
	assert.Equal(t, auth.RoleAdmin, accessClaims.Role)
	assert.Equal(t, auth.TypeRefresh, refreshClaims.Type)
}

// TestVerifyTokens_ChaveErrada rejeita tokens assinados com outra chave.
func TestVerifyTokens_ChaveErrada(t *testing.T) {
	accessToken, refreshToken, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleEmployee}, "outra-chave")
	assert.NoError(t, err)

	_, _, err = commands.VerifyTokens(accessToken, refreshToken, testSecret)
	assert.Error(t, err)
}

// TestVerifyTokens_ParTrocado rejeita refresh token de outro usuário.
func TestVerifyTokens_ParTrocado(t *testing.T) {
	accessToken, _, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleEmployee}, testSecret)
	assert.NoError(t, err)

	_, otherRefresh, err := commands.GenToken(user.AuthClaims{ID: 8, Role: auth.RoleEmployee}, testSecret)
	assert.NoError(t, err)

	_, _, err = commands.VerifyTokens(accessToken, otherRefresh, testSecret)
	assert.Error(t, err)
}

// TestVerifyTokens_AccessNoLugarDeRefresh rejeita um access token passado no
// lugar do refresh.
func TestVerifyTokens_AccessNoLugarDeRefresh(t *testing.T) {
	accessToken, _, err := commands.GenToken(user.AuthClaims{ID: 7, Role: auth.RoleEmployee}, testSecret)
	assert.NoError(t, err)

	_, _, err = commands.VerifyTokens(accessToken, accessToken, testSecret)
	assert.Error(t, err)
}
