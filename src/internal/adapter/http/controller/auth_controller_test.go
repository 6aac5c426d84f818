package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortivise/payment-module/src/internal/adapter/http/middleware"
	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
)

type authServiceStub struct {
	user      domain.User
	token     domain.AccessToken
	loggedOut []string
	register  func(req models.RegisterRequest) (commons.Response[models.UserResponse], error)
}

func (s *authServiceStub) Register(_ context.Context, req models.RegisterRequest) (commons.Response[models.UserResponse], error) {
	return s.register(req)
}

func (s *authServiceStub) Login(_ context.Context, req models.LoginRequest) (commons.Response[models.TokenResponse], error) {
	if req.Password != "secret1" {
		return commons.ErrorResponse[models.TokenResponse](domain.ErrInvalidCredentials.Error()), domain.ErrInvalidCredentials
	}
	return commons.SuccessResponse(commons.MessageOK, models.TokenResponse{Type: "bearer", Token: "oat_x.y", ExpiresAt: time.Now().Add(time.Hour)}), nil
}

func (s *authServiceStub) Logout(_ context.Context, token domain.AccessToken) (commons.Response[struct{}], error) {
	s.loggedOut = append(s.loggedOut, token.ID)
	return commons.MessageResponse(commons.MessageOK), nil
}

func (s *authServiceStub) Authenticated(_ context.Context, user domain.User) (commons.Response[models.UserResponse], error) {
	return commons.SuccessResponse(commons.MessageOK, models.NewUserResponse(user)), nil
}

func (s *authServiceStub) Authenticate(_ context.Context, bearer string) (domain.User, domain.AccessToken, error) {
	if bearer != "valid" {
		return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
	}
	return s.user, s.token, nil
}

func newAuthRouter(svc *authServiceStub) http.Handler {
	r := chi.NewRouter()
	NewAuthController(svc).RegisterRoutes(r, middleware.BearerAuth(svc))
	return r
}

func doAuth(t *testing.T, h http.Handler, method, path, body, bearer string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestAuthControllerLoginIsPublic(t *testing.T) {
	h := newAuthRouter(&authServiceStub{})

	status, body := doAuth(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"Grower@Example.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body.Result), `"token":"oat_x.y"`)

	status, body = doAuth(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"grower@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid user credentials", body.Message)
}

func TestAuthControllerGuardedRoutes(t *testing.T) {
	svc := &authServiceStub{
		user:  domain.User{ID: "u1", Email: "grower@example.com"},
		token: domain.AccessToken{ID: "t1", UserID: "u1"},
	}
	h := newAuthRouter(svc)

	status, _ := doAuth(t, h, http.MethodGet, "/api/v1/auth", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := doAuth(t, h, http.MethodGet, "/api/v1/auth", "", "valid")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body.Result), `"email":"grower@example.com"`)

	status, _ = doAuth(t, h, http.MethodPost, "/api/v1/auth/logout", "", "valid")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"t1"}, svc.loggedOut)
}

func TestAuthControllerRegisterConflict(t *testing.T) {
	svc := &authServiceStub{
		register: func(models.RegisterRequest) (commons.Response[models.UserResponse], error) {
			return commons.ErrorResponse[models.UserResponse](commons.MessageConflict), domain.ErrEmailTaken
		},
	}

	status, body := doAuth(t, newAuthRouter(svc), http.MethodPost, "/api/v1/auth/register", `{"email":"grower@example.com","password":"secret1"}`, "valid")

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, http.StatusConflict, body.Code)
}
