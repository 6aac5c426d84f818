package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/adapter/repository/repo_interfaces"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const (
	AccessTokenPrefix = "oat_"
	AccessTokenName   = "api_access_token"
	AccessTokenType   = "bearer"

	tokenSecretBytes = 32
)

var allAbilities = []string{"*"}

type AuthService struct {
	users  repo_interfaces.UserRepository
	tokens repo_interfaces.AccessTokenRepository
	ttl    time.Duration
}

func NewAuthService(users repo_interfaces.UserRepository, tokens repo_interfaces.AccessTokenRepository, ttl time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, ttl: ttl}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("auth service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	created, err := s.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		return failure[models.UserResponse](err), err
	}

	return commons.SuccessResponse(commons.MessageOK, models.NewUserResponse(created)), nil
}

// CreateUser stores a user with a bcrypt hashed password. It fails with
// domain.ErrEmailTaken when the email is already registered.
func (s *AuthService) CreateUser(ctx context.Context, email, password string) (domain.User, error) {
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Info("auth service email already registered", logger.Fields{
			"email": email,
		})
		return domain.User{}, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrRecordNotFound):
		return domain.User{}, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		logger.Error("auth service hash password failed", err, nil)
		return domain.User{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, err
	}

	logger.Info("auth service user created", logger.Fields{
		"userId": created.ID,
	})
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.TokenResponse], error) {
	logger.Info("auth service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			err = domain.ErrInvalidCredentials
		}
		return failure[models.TokenResponse](err), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			err = fmt.Errorf("verify password: %w", err)
			logger.Error("auth service password compare failed", err, logger.Fields{
				"userId": user.ID,
			})
			return failure[models.TokenResponse](err), err
		}
		logger.Info("auth service login password mismatch", logger.Fields{
			"userId": user.ID,
		})
		return failure[models.TokenResponse](domain.ErrInvalidCredentials), domain.ErrInvalidCredentials
	}

	secret, err := newTokenSecret()
	if err != nil {
		return failure[models.TokenResponse](err), err
	}

	token, err := s.tokens.Create(ctx, domain.AccessToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      AccessTokenName,
		Hash:      hashTokenSecret(secret),
		Abilities: allAbilities,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
	})
	if err != nil {
		return failure[models.TokenResponse](err), err
	}

	logger.Info("auth service login success", logger.Fields{
		"userId":  user.ID,
		"tokenId": token.ID,
	})

	return commons.SuccessResponse(commons.MessageOK, models.TokenResponse{
		Type:       AccessTokenType,
		Name:       token.Name,
		Token:      AccessTokenPrefix + token.ID + "." + secret,
		Abilities:  token.Abilities,
		LastUsedAt: token.LastUsedAt,
		ExpiresAt:  token.ExpiresAt,
	}), nil
}

// Logout revokes the token the request was authenticated with.
func (s *AuthService) Logout(ctx context.Context, token domain.AccessToken) (commons.Response[struct{}], error) {
	if err := s.tokens.Delete(ctx, token.ID); err != nil {
		return failure[struct{}](err), err
	}

	logger.Info("auth service logout success", logger.Fields{
		"userId":  token.UserID,
		"tokenId": token.ID,
	})
	return commons.MessageResponse(commons.MessageOK), nil
}

func (s *AuthService) Authenticated(_ context.Context, user domain.User) (commons.Response[models.UserResponse], error) {
	return commons.SuccessResponse(commons.MessageOK, models.NewUserResponse(user)), nil
}

// Authenticate resolves a bearer token to its user. Every failure is reported
// as domain.ErrUnauthorized except store errors.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (domain.User, domain.AccessToken, error) {
	id, secret, ok := parseAccessToken(bearer)
	if !ok {
		return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
	}

	token, err := s.tokens.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
		}
		return domain.User{}, domain.AccessToken{}, err
	}

	if subtle.ConstantTimeCompare([]byte(token.Hash), []byte(hashTokenSecret(secret))) != 1 {
		return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
	}
	if token.Expired(time.Now()) {
		logger.Info("auth service token expired", logger.Fields{
			"tokenId": token.ID,
		})
		return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.User{}, domain.AccessToken{}, domain.ErrUnauthorized
		}
		return domain.User{}, domain.AccessToken{}, err
	}

	if err := s.tokens.Touch(ctx, token.ID); err != nil {
		logger.Error("auth service touch token failed", err, logger.Fields{
			"tokenId": token.ID,
		})
	}

	return user, token, nil
}

func parseAccessToken(bearer string) (id string, secret string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(bearer), AccessTokenPrefix)
	if !found {
		return "", "", false
	}

	id, secret, found = strings.Cut(rest, ".")
	if !found || secret == "" {
		return "", "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "", false
	}
	return id, secret, true
}

func newTokenSecret() (string, error) {
	buf := make([]byte, tokenSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashTokenSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
