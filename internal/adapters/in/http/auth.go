package http

import (
	"errors"
	"net/http"
	"strings"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// CustomClaims carries the principal fields the auth collaborator encodes
// into each bearer token.
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Principal is the authenticated identity attached to each request.
// Role membership is not part of the token; it is looked up per request so
// revoking a role takes effect immediately.
type Principal struct {
	UserID   kernel.UUID
	Username string
	IsAdmin  bool
}

// AuthMiddleware resolves the bearer token into a Principal and stores it in
// the request context. Requests without a valid HS256 token are rejected
// with 401.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	jwtKey := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				return ctx.JSON(http.StatusUnauthorized, messageResponse{Message: "missing bearer token"})
			}

			claims, err := parseToken(tokenStr, jwtKey)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid token"})
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid token"})
			}

			ctx.Set(principalContextKey, Principal{
				UserID:   userID,
				Username: claims.Username,
				IsAdmin:  claims.IsAdmin,
			})

			return next(ctx)
		}
	}
}

func parseToken(tokenStr string, jwtKey []byte) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtKey, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func principalFrom(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}
