package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = int64(42)
	testEmail  = "ana@example.com"
	testIssuer = "catalogo-api-test"
	testExpMin = 60
)

func TestAccess_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := pkgjwt.Parse(testSecret, tok, pkgjwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestRefresh_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	userID, email, err := pkgjwt.Parse(testSecret, tok, pkgjwt.TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

// Un refresh token no sirve como access ni al revés: el claim token_type
// separa los dos usos aunque la firma sea válida.
func TestParse_TipoIncorrecto_RetornaError(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(testSecret, refresh, pkgjwt.TypeAccess)
	assert.Error(t, err, "un refresh token no debe aceptarse como access")

	access, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(testSecret, access, pkgjwt.TypeRefresh)
	assert.Error(t, err, "un access token no debe aceptarse como refresh")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: ya vencido al momento de parsear.
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok, pkgjwt.TypeAccess)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok, pkgjwt.TypeAccess)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "no.es.un-jwt", pkgjwt.TypeAccess)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.GenerateAccess("", testUserID, testEmail, testIssuer, testExpMin)
	assert.Error(t, err)
}

// Cada token lleva un jti propio: dos emisiones consecutivas nunca coinciden.
func TestGenerate_TokensUnicos(t *testing.T) {
	tok1, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	tok2, err := pkgjwt.GenerateAccess(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	assert.NotEqual(t, tok1, tok2)
}
