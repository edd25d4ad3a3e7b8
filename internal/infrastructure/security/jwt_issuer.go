package security

import (
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

var _ auth.TokenIssuer = (*JWTIssuer)(nil)

// JWTIssuer implementación del puerto TokenIssuer sobre pkg/jwt (HS256).
type JWTIssuer struct {
	cfg config.JWTConfig
}

// NewJWTIssuer construye el emisor con la configuración de JWT.
func NewJWTIssuer(cfg config.JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// IssuePair emite un access y un refresh token para el usuario.
func (i *JWTIssuer) IssuePair(userID int64, email string) (string, string, error) {
	access, err := jwt.GenerateAccess(i.cfg.Secret, userID, email, i.cfg.Issuer, i.cfg.AccessExpiration)
	if err != nil {
		return "", "", err
	}
	refresh, err := jwt.GenerateRefresh(i.cfg.Secret, userID, email, i.cfg.Issuer, i.cfg.RefreshExpiration)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccess emite solo un access token nuevo (flujo de refresh).
func (i *JWTIssuer) IssueAccess(userID int64, email string) (string, error) {
	return jwt.GenerateAccess(i.cfg.Secret, userID, email, i.cfg.Issuer, i.cfg.AccessExpiration)
}
