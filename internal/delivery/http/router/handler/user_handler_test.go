package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUsecase "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	registered := &entity.User{
		ID:           uuid.New(),
		Username:     "tester",
		Email:        "tester@example.com",
		PasswordHash: "should-never-appear",
		IsActive:     true,
		Role:         entity.RoleStaff,
		CreatedAt:    time.Now(),
	}
	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Username == "tester" && input.Email == "tester@example.com"
	})).Return(&usecase.RegisterOutput{User: registered}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/users/register",
		`{"username":"tester","email":"tester@example.com","password":"Password123!"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"tester"`)
	// The stored hash must never reach the client.
	assert.NotContains(t, rec.Body.String(), "should-never-appear")
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Password too short, email malformed.
	c, _ := newJSONContext(e, http.MethodPost, "/users/register",
		`{"username":"tester","email":"not-an-email","password":"short"}`)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUsernameAlreadyExists)

	c, _ := newJSONContext(e, http.MethodPost, "/users/register",
		`{"username":"taken","email":"tester@example.com","password":"Password123!"}`)

	err := handler.Register(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestUserHandler_Login(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := &entity.User{ID: uuid.New(), Username: "tester", IsActive: true, Role: entity.RoleStaff}
	uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Identifier == "tester"
	})).Return(&usecase.LoginOutput{
		AccessToken: "signed.token",
		TokenType:   "bearer",
		User:        user,
	}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/users/login",
		`{"identifier":"tester","password":"Password123!"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(e, http.MethodPost, "/users/login",
		`{"identifier":"tester","password":"wrong"}`)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserHandler_GetProfile(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	uc.On("GetProfile", mock.Anything, userID).
		Return(&entity.User{ID: userID, Username: "tester"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestUserHandler_GetProfile_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// No userID on the context, as if the auth middleware never ran.
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestUserHandler_ListUsers(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockUserUsecase(t)
	handler := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	users := []*entity.User{
		{ID: uuid.New(), Username: "alpha"},
		{ID: uuid.New(), Username: "beta"},
	}
	uc.On("ListUsers", mock.Anything, mock.MatchedBy(func(input *usecase.ListUsersInput) bool {
		return input.Offset == 10 && input.Limit == 5
	})).Return(users, nil)

	req := httptest.NewRequest(http.MethodGet, "/users?offset=10&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alpha")
	assert.Contains(t, rec.Body.String(), "beta")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
