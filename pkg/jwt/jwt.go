package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token emitidos. El refresh solo sirve para pedir un access nuevo.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el ID del usuario como string; Email viaja como claim adicional
// para que el refresh pueda emitir un access nuevo sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	TokenType string `json:"token_type"` // "access" | "refresh"
}

// GenerateAccess genera un access token HS256 firmado para el usuario.
func GenerateAccess(secret string, userID int64, email, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, email, issuer, TypeAccess, expMinutes)
}

// GenerateRefresh genera un refresh token HS256 firmado para el usuario.
func GenerateRefresh(secret string, userID int64, email, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, email, issuer, TypeRefresh, expMinutes)
}

func generate(secret string, userID int64, email, issuer, tokenType string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email:     email,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID y email.
// wantType obliga a que el claim token_type coincida: un refresh no sirve como
// access ni al revés. Retorna error si el token es inválido, expirado o con
// firma incorrecta.
func Parse(secret, tokenString, wantType string) (userID int64, email string, err error) {
	if secret == "" {
		return 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("claims inválidos")
	}
	if claims.TokenType != wantType {
		return 0, "", fmt.Errorf("token de tipo %q, se esperaba %q", claims.TokenType, wantType)
	}
	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("subject inválido: %w", err)
	}
	return userID, claims.Email, nil
}
