package utils

import (
	"fmt"
	"github.com/golang-jwt/jwt"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/spf13/viper"
	"time"
)

const authTokenTTL = 24 * time.Hour

// AuthTokenWrapper is the claim set of an admin token.
type AuthTokenWrapper struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

func signingKey() []byte {
	return []byte(viper.GetString(constants.ViperSigningKey))
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	if wrapper.ExpiresAt == 0 {
		wrapper.ExpiresAt = time.Now().Add(authTokenTTL).Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper).SignedString(signingKey())
	if err != nil {
		return "", fmt.Errorf("SignedString: %w", err)
	}
	return token, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnauthorized, err.Error())
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
