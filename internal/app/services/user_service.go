package services

import (
	"context"
	"strings"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
	"github.com/emrekoc/studentdesk/internal/pkg/auth"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// UserService handles user account business logic
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAllUsers returns users matching the filters; passwords are never selected
func (s *UserService) GetAllUsers(ctx context.Context, filters dto.UserFilters) ([]*models.User, error) {
	filters.Limit, filters.Offset = helpers.NormalizeLimitOffset(filters.Limit, filters.Offset)
	return s.userRepo.GetAll(ctx, filters)
}

// GetUserByID returns a single user
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser hashes the password and stores a new account. The stored
// hash is never returned on any read path.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = string(models.RoleUser)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User created")
	return user, nil
}

// UpdateUser applies the non-nil fields to an existing user
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	return s.userRepo.Update(ctx, id, req)
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
