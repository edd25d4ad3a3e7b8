package auth

// PasswordHasher abstrae el hash one-way de contraseñas (bcrypt en producción).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer emite tokens firmados para un usuario. La verificación de
// tokens entrantes vive en el middleware HTTP, no en este puerto.
type TokenIssuer interface {
	IssuePair(userID int64, email string) (access, refresh string, err error)
	IssueAccess(userID int64, email string) (string, error)
}
