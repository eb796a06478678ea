package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -destination=mock_auth.go -package=auth github.com/GlebRadaev/festeros/pkg/auth JWTServiceInterface,HashServiceInterface

type JWTServiceInterface interface {
	GenerateJWT(accountID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var ErrInvalidToken = errors.New("invalid token")

// Claims carry the account id only. The role is always read from the store.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
	issuer    string
}

func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		issuer:    issuer,
	}
}

func (s *JWTService) GenerateJWT(accountID string, expirationTime time.Time) (string, error) {
	if accountID == "" {
		return "", errors.New("account id cannot be empty")
	}
	claims := Claims{
		AccountID: accountID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AccountID == "" || claims.Issuer != s.issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
