package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, claims CustomClaims, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invokeMiddleware(authHeader string) (*httptest.ResponseRecorder, Principal, bool) {
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		request.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	var principal Principal
	var reached bool
	handler := AuthMiddleware(testSecret)(func(ctx echo.Context) error {
		principal, reached = principalFrom(ctx)
		return ctx.NoContent(http.StatusOK)
	})
	_ = handler(ctx)

	return recorder, principal, reached
}

func TestAuthMiddleware_ValidToken_ResolvesPrincipal(t *testing.T) {
	userID := kernel.NewUUID()
	token := mintToken(t, CustomClaims{
		UserID:   userID.String(),
		Username: "maria",
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	recorder, principal, reached := invokeMiddleware("Bearer " + token)

	require.True(t, reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, principal.UserID.IsEqual(userID))
	assert.Equal(t, "maria", principal.Username)
	assert.True(t, principal.IsAdmin)
}

func TestAuthMiddleware_MissingHeader_Returns401(t *testing.T) {
	recorder, _, reached := invokeMiddleware("")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_WrongSecret_Returns401(t *testing.T) {
	token := mintToken(t, CustomClaims{
		UserID: kernel.NewUUID().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "other-secret")

	recorder, _, reached := invokeMiddleware("Bearer " + token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_ExpiredToken_Returns401(t *testing.T) {
	token := mintToken(t, CustomClaims{
		UserID: kernel.NewUUID().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	recorder, _, reached := invokeMiddleware("Bearer " + token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_MalformedUserID_Returns401(t *testing.T) {
	token := mintToken(t, CustomClaims{
		UserID: "not-a-uuid",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	recorder, _, reached := invokeMiddleware("Bearer " + token)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
