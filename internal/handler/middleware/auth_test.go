//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/jwt"
	"barber-booking/tests/common/httptest"
	usecasemock "barber-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	mw := middleware.NewAuthMiddleware(s.mockValidator)
	s.router = gin.New()
	s.router.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		role, _ := middleware.GetRole(c)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("success: valid token passes and sets the role", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").
			Return(&jwt.Claims{Role: "admin"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "good-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response["role"])
	})

	s.Run("error: 401 without an Authorization header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 for an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").
			Return(nil, jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "bad-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 for an expired token", func() {
		s.mockValidator.EXPECT().ValidateToken("stale-token").
			Return(nil, jwt.ErrExpiredToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "stale-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
