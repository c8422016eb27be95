package commands

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"ponto/backend/internal/auth"
	"ponto/backend/internal/repository/postgres/user"
)

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// GenToken creates the access/refresh token pair for a signed-in user.
func GenToken(userClaims user.AuthClaims, secret string) (string, string, error) {
	now := time.Now()

	accessClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: userClaims.ID,
		Role:   userClaims.Role,
		Type:   auth.TypeAccess,
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := accessClaims
	refreshClaims.ExpiresAt = now.Add(refreshTokenTTL).Unix()
	refreshClaims.Type = auth.TypeRefresh

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens checks a token pair during refresh. The access token may be
// expired; its signature still has to verify.
func VerifyTokens(accessToken, refreshToken, secret string) (auth.Claims, auth.Claims, error) {
	accessClaims, err := parseAllowExpired(accessToken, secret)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "verifying access token")
	}

	refreshClaims, err := parseAllowExpired(refreshToken, secret)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "verifying refresh token")
	}

	if refreshClaims.Type != auth.TypeRefresh {
		return auth.Claims{}, auth.Claims{}, errors.New("refresh token has the wrong type")
	}
	if time.Now().Unix() > refreshClaims.ExpiresAt {
		return auth.Claims{}, auth.Claims{}, errors.New("refresh token expired")
	}
	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}

func parseAllowExpired(tokenStr, secret string) (auth.Claims, error) {
	var claims auth.Claims

	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if !ok || ve.Errors != jwt.ValidationErrorExpired {
			return auth.Claims{}, err
		}
	}

	return claims, nil
}
