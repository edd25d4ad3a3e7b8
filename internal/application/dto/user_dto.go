package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el caso de uso).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"nombre" validate:"required,min=1,max=100"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse vista pública de un usuario (sin password_hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

// AuthResponse salida de register/login: usuario más par de tokens.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshResponse salida de refresh: solo un access token nuevo.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
