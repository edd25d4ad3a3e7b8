package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/security"
)

func TestBcryptHasher_HashYVerify(t *testing.T) {
	// Costo mínimo para que el test sea rápido; el costo real viene de config.
	hasher := security.NewBcryptHasher(4)

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash, "el hash nunca es la contraseña en claro")

	assert.True(t, hasher.Verify("123456", hash))
	assert.False(t, hasher.Verify("incorrecta", hash))
}

func TestBcryptHasher_HashesDistintosPorSalt(t *testing.T) {
	hasher := security.NewBcryptHasher(4)

	h1, err := hasher.Hash("123456")
	require.NoError(t, err)
	h2, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt sala cada hash, dos hashes nunca coinciden")
	assert.True(t, hasher.Verify("123456", h1))
	assert.True(t, hasher.Verify("123456", h2))
}
