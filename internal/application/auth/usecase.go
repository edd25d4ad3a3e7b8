package auth

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y refresh.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register crea un usuario: valida email único y largo de contraseña, hashea
// con el PasswordHasher, persiste y emite el par de tokens.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := uc.users.ExistsByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	if len(in.Password) < 6 {
		return nil, domain.NewValidationError("la contraseña debe tener al menos 6 caracteres")
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := entity.NewUser(in.Email, hash, in.Name, true)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	created, err := uc.users.Create(user)
	if err != nil {
		return nil, err
	}
	access, refresh, err := uc.tokens.IssuePair(created.ID, created.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:         toUserResponse(created),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Login verifica credenciales y emite un par de tokens nuevo.
// Email inexistente o contraseña incorrecta devuelven (nil, nil): credenciales
// inválidas no son un error. Una cuenta desactivada sí: ErrInactiveAccount.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !user.Active {
		return nil, domain.ErrInactiveAccount
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, nil
	}
	access, refresh, err := uc.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:         toUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Refresh emite un access token nuevo para una identidad ya verificada por el
// middleware de refresh. No toca storage: los tokens son stateless.
func (uc *AuthUseCase) Refresh(userID int64, email string) (*dto.RefreshResponse, error) {
	access, err := uc.tokens.IssueAccess(userID, email)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
