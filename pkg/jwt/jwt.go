package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret el secreto de firma no está configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims claims estándar más los identificadores de tenant que el emisor
// conozca. Cualquiera de ellos puede aparecer como dueño en los registros.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id,omitempty"`
	UID        string `json:"uid,omitempty"`
	SellerID   string `json:"seller_id,omitempty"`
	ShopID     string `json:"shop_id,omitempty"`
	StoreID    string `json:"store_id,omitempty"`
	TenantID   string `json:"tenant_id,omitempty"`
	BusinessID string `json:"business_id,omitempty"`
	OwnerID    string `json:"owner_id,omitempty"`
	CompanyID  string `json:"company_id,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Generate firma (HS256) un token con los claims dados; completa emisor,
// sujeto (UserID) y fechas.
func Generate(secret, issuer string, expMinutes int, claims Claims) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	return claims, nil
}
