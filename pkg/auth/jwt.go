package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid access token")

type JWT struct {
	Secret string
}

// NewJWT builds the token issuer. An empty secret is a startup error: the
// process must refuse to serve rather than sign tokens with an empty key.
func NewJWT(secret string) (*JWT, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &JWT{Secret: secret}, nil
}

// CreateToken signs a token carrying the user's email. Tokens carry no
// expiry claim, matching the existing deployment. Clients hold them for the
// lifetime of the signing secret.
func (j *JWT) CreateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
	})

	return token.SignedString([]byte(j.Secret))
}

// VerifyToken validates the signature and returns the email claim. Any
// failure collapses to ErrInvalidToken.
func (j *JWT) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)

	if !ok || email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}
