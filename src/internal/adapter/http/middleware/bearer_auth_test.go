package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortivise/payment-module/src/internal/domain"
)

type authenticatorStub struct {
	authenticateFn func(ctx context.Context, bearer string) (domain.User, domain.AccessToken, error)
}

func (s authenticatorStub) Authenticate(ctx context.Context, bearer string) (domain.User, domain.AccessToken, error) {
	return s.authenticateFn(ctx, bearer)
}

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUser, user.ID)

		_, ok = TokenFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth_AllowsValidToken(t *testing.T) {
	mw := BearerAuth(authenticatorStub{
		authenticateFn: func(_ context.Context, bearer string) (domain.User, domain.AccessToken, error) {
			assert.Equal(t, "oat_abc.secret", bearer)
			return domain.User{ID: "user-1"}, domain.AccessToken{ID: "abc", UserID: "user-1"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer oat_abc.secret")

	rr := httptest.NewRecorder()
	mw(okHandler(t, "user-1")).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerAuth_RejectsMissingHeader(t *testing.T) {
	mw := BearerAuth(authenticatorStub{
		authenticateFn: func(context.Context, string) (domain.User, domain.AccessToken, error) {
			t.Fatal("authenticator must not be called without a token")
			return domain.User{}, domain.AccessToken{}, nil
		},
	})

	for _, header := range []string{"", "Basic Zm9vOmJhcg==", "Bearer   "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		rr := httptest.NewRecorder()
		mw(okHandler(t, "")).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, header)
	}
}

func TestBearerAuth_RejectsUnknownToken(t *testing.T) {
	mw := BearerAuth(authenticatorStub{
		authenticateFn: func(context.Context, string) (domain.User, domain.AccessToken, error) {
			return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer oat_abc.wrong")

	rr := httptest.NewRecorder()
	mw(okHandler(t, "")).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusUnauthorized), body["code"])
	assert.Equal(t, "Unauthorized access", body["message"])
}

func TestBearerAuth_StoreFailureIsInternalError(t *testing.T) {
	mw := BearerAuth(authenticatorStub{
		authenticateFn: func(context.Context, string) (domain.User, domain.AccessToken, error) {
			return domain.User{}, domain.AccessToken{}, errors.New("connection reset")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer oat_abc.secret")

	rr := httptest.NewRecorder()
	mw(okHandler(t, "")).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
