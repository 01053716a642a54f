package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitplanhub/internal/auth"
	"fitplanhub/internal/model"
)

const testSecret = "test-secret"

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindTrainerByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListTrainers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// viewerEcho mounts a handler behind the gate under test that reports which
// identity LoadViewer resolved.
func viewerEcho(users *MockUserRepository, required bool) *echo.Echo {
	e := echo.New()
	handler := func(c echo.Context) error {
		viewer := ViewerFrom(c)
		if viewer.Anonymous() {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, fmt.Sprintf("user:%d", viewer.ID()))
	}
	if required {
		e.GET("/", handler, RequireToken(testSecret), LoadViewer(users, true))
	} else {
		e.GET("/", handler, OptionalToken(testSecret), LoadViewer(users, false))
	}
	return e
}

func doRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: 7,
		Email:  "stale@example.com",
		RegisteredClaims: jwtv4.RegisteredClaims{
			ExpiresAt: jwtv4.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtv4.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwtv4.NewWithClaims(jwtv4.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestOptionalToken_AnonymousFallback(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{"no token", ""},
		{"malformed token", "Bearer not-a-token"},
		{"wrongly signed token", "Bearer eyJhbGciOiJIUzI1NiJ9.e30.bm90LWEtc2lnbmF0dXJl"},
		{"expired token", "Bearer " + expiredToken(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			e := viewerEcho(users, false)

			rec := doRequest(e, tt.authorization)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "anonymous", rec.Body.String())
			// A token that does not verify must not trigger a lookup.
			users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

func TestOptionalToken_ValidTokenResolvesViewer(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, uint(7)).
		Return(&model.User{ID: 7, Name: "Carla", Role: model.RoleUser}, nil)

	token, err := auth.NewJWTService(testSecret).GenerateToken(7, "carla@example.com")
	assert.NoError(t, err)

	e := viewerEcho(users, false)
	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user:7", rec.Body.String())
	users.AssertExpectations(t)
}

func TestRequireToken(t *testing.T) {
	token, err := auth.NewJWTService(testSecret).GenerateToken(7, "carla@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		setupMock     func(*MockUserRepository)
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "no token",
			authorization: "",
			setupMock:     func(users *MockUserRepository) {},
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "malformed token",
			authorization: "Bearer not-a-token",
			setupMock:     func(users *MockUserRepository) {},
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "valid token for a deleted user",
			authorization: "Bearer " + token,
			setupMock: func(users *MockUserRepository) {
				users.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer " + token,
			setupMock: func(users *MockUserRepository) {
				users.On("FindByID", mock.Anything, uint(7)).
					Return(&model.User{ID: 7, Name: "Carla", Role: model.RoleUser}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "user:7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)

			rec := doRequest(viewerEcho(users, true), tt.authorization)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			users.AssertExpectations(t)
		})
	}
}
