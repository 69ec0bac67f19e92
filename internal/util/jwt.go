package util

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

var (
	TokenIssuer         = "github.com/ferdian3456/jobboard"
	AccessTokenDuration = 15 * time.Minute

	errMissingSecret = errors.New("jwt secret key is not configured")
)

// IssueAccessToken signs an HS256 token for userId. The caller caches its hash
// so that logout revokes it before it expires.
func IssueAccessToken(userId int64, jwtSecretKey string, now time.Time) (model.TokenResponse, error) {
	if jwtSecretKey == "" {
		return model.TokenResponse{}, errMissingSecret
	}

	claims := &model.Claims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatInt(userId, 10),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecretKey))
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int(AccessTokenDuration.Seconds()),
		TokenType:   strings.TrimSpace(bearerPrefix),
	}, nil
}

// ParseBearerToken reads an "Authorization: Bearer <jwt>" header and returns
// the raw token together with the user it was issued to.
func ParseBearerToken(authHeader string, jwtSecretKey string) (string, int64, error) {
	if jwtSecretKey == "" {
		return "", 0, errMissingSecret
	}

	if authHeader == "" {
		return "", 0, unauthorized("No authentication token is provided")
	}

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return "", 0, unauthorized("Authentication token format is not match")
	}
	if tokenString == "" {
		return "", 0, unauthorized("Authentication token is empty")
	}

	claims := &model.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", 0, unauthorized(parseErrorMessage(err))
	}

	if claims.UserId <= 0 {
		return "", 0, unauthorized("Authentication token is invalid")
	}

	return tokenString, claims.UserId, nil
}

func unauthorized(message string) error {
	return &model.ValidationError{
		Code:    constant.ERR_UNATHORIZED_ERROR,
		Message: message,
		Param:   "accessToken",
	}
}

func parseErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "Authentication token is malformed"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Authentication token is expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Authentication token is not valid yet"
	default:
		return "Authentication token is invalid"
	}
}
