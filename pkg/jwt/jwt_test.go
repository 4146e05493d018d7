package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/pkg/jwt"
)

const testSecret = "secret-de-test-jwt"

func TestGenerateEtParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, 7, 3, []string{"ADMIN", "MANAGER"}, "gestion-stock-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 3, claims.EntrepriseID)
	assert.Equal(t, []string{"ADMIN", "MANAGER"}, claims.Roles)
	assert.Equal(t, "gestion-stock-test", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
}

func TestParse_MauvaisSecret(t *testing.T) {
	tok, err := jwt.Generate(testSecret, 7, 3, nil, "gestion-stock-test", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("autre-secret", tok)
	assert.Error(t, err)
}

func TestParse_JetonExpire(t *testing.T) {
	tok, err := jwt.Generate(testSecret, 7, 3, nil, "gestion-stock-test", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVide(t *testing.T) {
	_, err := jwt.Generate("", 7, 3, nil, "gestion-stock-test", 60)
	assert.Error(t, err)
}
