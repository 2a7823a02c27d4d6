package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AssetURLIssuer is the issuer claim stamped into every signed asset URL
// token. Validation rejects tokens carrying any other issuer.
const AssetURLIssuer = "storysync-gateway"

// GenerateAssetToken creates a signed HMAC-SHA256 JWT that grants
// time-limited access to a single asset path.
//
// The token includes the following standard claims:
//   - Issuer    (iss): AssetURLIssuer
//   - Subject   (sub): the asset path the token grants access to
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateAssetToken(path string, ttl time.Duration, signKey string) (string, error) {
	if path == "" || ttl == 0 || signKey == "" {
		return "", errors.New("invalid params for generating asset token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    AssetURLIssuer,
		Subject:   path,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing asset token: %w", err)
	}

	return tokenString, nil
}

// ValidateAssetToken verifies the given asset token string and extracts the
// asset path it grants access to.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against AssetURLIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Returns the asset path from the subject claim, or an error if validation
// fails.
func ValidateAssetToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(AssetURLIssuer))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing asset token: %w", err)
	}

	path, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from asset token: %w", err)
	}
	if path == "" {
		return "", errors.New("empty subject error")
	}

	return path, nil
}
