package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness or state-precondition violation
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
	ErrEquipmentNotFound = &NotFoundError{Entity: "equipment"}
	ErrTeamNotFound      = &NotFoundError{Entity: "team"}
	ErrRequestNotFound   = &NotFoundError{Entity: "request"}
)

// Conflict Errors
var (
	ErrUserExists               = &ConflictError{Message: "user with email or username already exists"}
	ErrSerialNumberExists       = &ConflictError{Message: "equipment with this serial number already exists"}
	ErrTeamNameExists           = &ConflictError{Message: "team with this name already exists"}
	ErrEquipmentAlreadyScrapped = &ConflictError{Message: "equipment is already scrapped"}
	ErrEquipmentScrapped        = &ConflictError{Message: "cannot create a request for scrapped equipment"}
	ErrTechnicianAlreadyInTeam  = &ConflictError{Message: "technician is already in this team"}
	ErrTechnicianNotInTeam      = &ConflictError{Message: "technician is not in this team"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidAccessToken  = &AuthenticationError{Message: "invalid access token"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrMissingAccessToken  = &AuthenticationError{Message: "authentication required"}
	ErrMissingRefreshToken = &AuthenticationError{Message: "refresh token required"}
)

// Authorization Errors
var (
	ErrNotRequestOwner = &AuthorizationError{Message: "only the requester or a manager may modify this request"}
)

// Business Logic Errors
var (
	ErrInvalidOldPassword = &AuthenticationError{Message: "old password is incorrect"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
