package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, expiresAt time.Time) string {
	t.Helper()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: 7,
		Email:  "abe@mail.com",
		Role:   "customer",
	}

	token := jwt.NewWithClaims(method, claims)
	var key interface{} = []byte(secret)
	if method == jwt.SigningMethodNone {
		key = jwt.UnsafeAllowNoneSignatureType
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecret, newTestLogger()), func(c *gin.Context) {
		userID, _ := c.Get(CtxUserID)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    c.GetString(CtxUserRole),
			"token":   RawToken(c),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := newProtectedRouter()

	validToken := signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	testCases := []struct {
		desc       string
		authHeader string
		code       int
	}{
		{
			desc:       "success",
			authHeader: "Bearer " + validToken,
			code:       http.StatusOK,
		}, {
			desc:       "failed_missing_header",
			authHeader: "",
			code:       http.StatusUnauthorized,
		}, {
			desc:       "failed_malformed_header",
			authHeader: "Token " + validToken,
			code:       http.StatusUnauthorized,
		}, {
			desc:       "failed_not_a_token",
			authHeader: "Bearer not.a.token",
			code:       http.StatusUnauthorized,
		}, {
			desc:       "failed_expired_token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour)),
			code:       http.StatusUnauthorized,
		}, {
			desc:       "failed_wrong_secret",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour)),
			code:       http.StatusUnauthorized,
		}, {
			desc:       "failed_unsigned_token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.SigningMethodNone, time.Now().Add(time.Hour)),
			code:       http.StatusUnauthorized,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tC.authHeader != "" {
				req.Header.Set("Authorization", tC.authHeader)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tC.code, rec.Code)
		})
	}
}

func TestAuthMiddlewareStoresClaims(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"customer","token":"`+token+`"}`, rec.Body.String())
}

func TestRawTokenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, RawToken(c))
}
