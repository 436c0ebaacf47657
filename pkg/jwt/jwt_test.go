package jwt_test

import (
	"testing"

	"github.com/jhoicas/ElectroPos-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

// TestGenerateYParse verifica el ciclo completo: generar y validar.
func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "cajero", "electropos-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "cajero", role)
}

// TestParse_FirmaIncorrecta: un token firmado con otro secret se rechaza.
func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "user-1", "admin", "electropos-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

// TestParse_TokenExpirado: expiración negativa produce token vencido.
func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "admin", "electropos-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

// TestGenerate_SecretVacio se rechaza.
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "admin", "electropos-api", 60)
	assert.Error(t, err)
}
