package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos: repo de usuarios en memoria, hasher reversible de
// juguete y emisor de tokens predecible. Ninguno toca crypto real: los casos
// de uso se prueban por contrato, bcrypt y JWT tienen sus propios tests.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	seq   int64
	users map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entity.User)}
}

func (r *fakeUserRepo) Create(user entity.User) (*entity.User, error) {
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return &user, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	for _, u := range r.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// fakeHasher antepone un prefijo: suficiente para verificar que Register nunca
// persiste la contraseña en claro.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, hash string) bool    { return hash == "hashed:"+plain }

type fakeIssuer struct{}

func (fakeIssuer) IssuePair(userID int64, email string) (string, string, error) {
	return "access-token", "refresh-token", nil
}

func (fakeIssuer) IssueAccess(userID int64, email string) (string, error) {
	return "access-token-nuevo", nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	return auth.NewAuthUseCase(users, fakeHasher{}, fakeIssuer{}), users
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_OK(t *testing.T) {
	uc, users := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{Email: "Ana@Example.com", Password: "123456", Name: "Ana"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "ana@example.com", out.User.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken, "register emite el par completo")

	// La contraseña nunca se persiste en claro.
	stored, err := users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:123456", stored.PasswordHash)
	assert.True(t, stored.Active, "los usuarios nuevos nacen activos")
}

func TestRegister_PasswordCorta_Validacion(t *testing.T) {
	uc, _ := newAuthUC()

	// 5 caracteres: un carácter por debajo del mínimo.
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "12345", Name: "Ana"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "al menos 6 caracteres")
}

func TestRegister_PasswordMinimaExacta_OK(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "123456", Name: "Ana"})
	assert.NoError(t, err, "6 caracteres es el mínimo permitido")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "123456", Name: "Ana"})
	require.NoError(t, err)

	// El mismo email con otra capitalización sigue siendo duplicado.
	_, err = uc.Register(dto.RegisterRequest{Email: "ANA@EXAMPLE.COM", Password: "123456", Name: "Otra Ana"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmailInvalido_Validacion(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "no-es-un-email", Password: "123456", Name: "Ana"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func registerAna(t *testing.T, uc *auth.AuthUseCase) {
	t.Helper()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "123456", Name: "Ana"})
	require.NoError(t, err)
}

func TestLogin_OK(t *testing.T) {
	uc, _ := newAuthUC()
	registerAna(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "123456"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestLogin_EmailConOtraCapitalizacion_OK(t *testing.T) {
	uc, _ := newAuthUC()
	registerAna(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "  ANA@example.com ", Password: "123456"})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestLogin_EmailInexistente_NilNil(t *testing.T) {
	uc, _ := newAuthUC()

	out, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "123456"})
	assert.NoError(t, err, "credenciales inválidas no son un error")
	assert.Nil(t, out)
}

func TestLogin_PasswordIncorrecta_NilNil(t *testing.T) {
	uc, _ := newAuthUC()
	registerAna(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.NoError(t, err)
	assert.Nil(t, out, "misma respuesta que email inexistente, sin filtrar cuál falló")
}

func TestLogin_CuentaDesactivada(t *testing.T) {
	uc, users := newAuthUC()
	created, err := users.Create(entity.NewUser("ana@example.com", "hashed:123456", "Ana", false))
	require.NoError(t, err)
	require.False(t, created.Active)

	// La cuenta inactiva se reporta aunque la contraseña sea correcta.
	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "123456"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestLogin_CuentaDesactivada_AntesDeVerificarPassword(t *testing.T) {
	uc, users := newAuthUC()
	_, err := users.Create(entity.NewUser("ana@example.com", "hashed:123456", "Ana", false))
	require.NoError(t, err)

	// Incluso con contraseña mala se reporta cuenta inactiva: el estado de la
	// cuenta se evalúa antes que las credenciales.
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_EmiteSoloAccessToken(t *testing.T) {
	uc, _ := newAuthUC()

	out, err := uc.Refresh(1, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "access-token-nuevo", out.AccessToken)
}
