package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/adapter/repository/repo_interfaces"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

type UserService struct {
	userRepo repo_interfaces.UserRepository
}

func NewUserService(userRepo repo_interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) All(ctx context.Context) (commons.Response[[]models.UserResponse], error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return failure[[]models.UserResponse](err), err
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, models.NewUserResponse(user))
	}

	return commons.SuccessResponse(commons.MessageOK, out), nil
}

func (s *UserService) Single(ctx context.Context, id string) (commons.Response[models.UserResponse], error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return failure[models.UserResponse](err), err
	}

	return commons.SuccessResponse(commons.MessageOK, models.NewUserResponse(user)), nil
}

// Update replaces the user's email and password. An email held by another
// user is rejected as a bad request.
func (s *UserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("user service update request", logger.Fields{
		"userId":  id,
		"payload": logger.SanitizePayload(req),
	})

	user, err := s.find(ctx, id)
	if err != nil {
		return failure[models.UserResponse](err), err
	}

	taken, err := s.userRepo.EmailTakenByOther(ctx, req.Email, user.ID)
	if err != nil {
		return failure[models.UserResponse](err), err
	}
	if taken {
		vErr := domain.NewValidationError(commons.MessageEmailExists)
		return failure[models.UserResponse](vErr), vErr
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("user service hash password failed", err, logger.Fields{
			"userId": user.ID,
		})
		return failure[models.UserResponse](err), err
	}

	user.Email = req.Email
	user.PasswordHash = hash
	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			vErr := domain.NewValidationError(commons.MessageEmailExists)
			return failure[models.UserResponse](vErr), vErr
		}
		return failure[models.UserResponse](err), err
	}

	logger.Info("user service update success", logger.Fields{
		"userId": updated.ID,
	})

	return commons.SuccessResponse(commons.MessageOK, models.NewUserResponse(updated)), nil
}

func (s *UserService) Delete(ctx context.Context, id string) (commons.Response[models.UserResponse], error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return failure[models.UserResponse](err), err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return failure[models.UserResponse](err), err
	}

	logger.Info("user service delete success", logger.Fields{
		"userId": user.ID,
	})

	return commons.SuccessResponse(commons.MessageDeleted, models.NewUserResponse(user)), nil
}

// find treats ids that are not UUIDs as unknown users.
func (s *UserService) find(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, domain.ErrRecordNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}
