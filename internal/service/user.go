package service

import (
	"errors"
	"fmt"

	"gearguard-backend/internal/database/models"
	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles user profile operations
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateProfileRequest represents a partial update of the caller's profile
type UpdateProfileRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
}

// ChangePasswordRequest represents a password change for the caller
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// GetByID retrieves a user profile
func (s *UserService) GetByID(id uuid.UUID) (*UserSummary, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	return userSummary(user), nil
}

// UpdateProfile applies a partial update to the caller's profile. A changed
// email is re-checked for uniqueness.
func (s *UserService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*UserSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "supplied fields must be valid")
	}

	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrUserExists
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userSummary(user), nil
}

// ChangePassword verifies the old password and stores a new bcrypt hash
func (s *UserService) ChangePassword(id uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("newPassword", "new password must be 8 to 72 characters")
	}

	user, err := s.getUser(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return apperrors.ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// List retrieves all users, optionally filtered by role
func (s *UserService) List(role *models.UserRole) ([]UserSummary, error) {
	if role != nil && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of USER, TECHNICIAN, MANAGER")
	}
	users, err := s.repo.List(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, *userSummary(&users[i]))
	}
	return summaries, nil
}

// ListTechnicians retrieves all users holding the TECHNICIAN role
func (s *UserService) ListTechnicians() ([]UserSummary, error) {
	role := models.UserRoleTechnician
	return s.List(&role)
}

func (s *UserService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
