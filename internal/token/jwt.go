package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkravets/bookmarks-api/internal/model"
)

// Claims represents the access token payload: the standard registered
// claims (sub carries the user ID) plus the account email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC (HS256).
type JWT struct {
	secretKey string
	accessTTL time.Duration
}

// NewJWT creates a token manager signing with the provided secret key.
// Issued tokens are valid for accessTTL from issuance.
func NewJWT(secretKey string, accessTTL time.Duration) *JWT {
	return &JWT{secretKey: secretKey, accessTTL: accessTTL}
}

// GenerateAccessToken creates a signed, time-bounded access token carrying
// the identity.
func (j *JWT) GenerateAccessToken(identity model.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		Email: identity.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken checks signature integrity and expiry and returns the
// identity the token carries. Failures map onto the model token errors so
// the reason stays visible in logs while callers report a single
// unauthenticated status.
func (j *JWT) ParseAccessToken(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Identity{}, classifyParseError(err)
	}
	if !token.Valid {
		return model.Identity{}, model.ErrTokenMalformed
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: bad subject", model.ErrTokenMalformed)
	}

	return model.Identity{UserID: userID, Email: claims.Email}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return model.ErrTokenSignatureInvalid
	default:
		return fmt.Errorf("%w: %v", model.ErrTokenMalformed, err)
	}
}
