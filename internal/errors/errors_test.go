package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "equipment"}
		assert.Equal(t, "equipment not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "equipment"}
		err2 := &NotFoundError{Entity: "equipment"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "equipment"}
		err2 := &NotFoundError{Entity: "team"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrEquipmentNotFound, ErrEquipmentNotFound))
		assert.False(t, errors.Is(ErrEquipmentNotFound, ErrTeamNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrRequestNotFound))
		assert.False(t, IsNotFound(ErrSerialNumberExists))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading equipment: %w", ErrEquipmentNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConflictError{Message: "equipment is already scrapped"}
		assert.Equal(t, "equipment is already scrapped", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &ConflictError{Message: "same"}
		err2 := &ConflictError{Message: "same"}
		assert.True(t, errors.Is(err1, err2))
		assert.False(t, errors.Is(err1, &ConflictError{Message: "other"}))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrEquipmentScrapped))
		assert.True(t, IsConflict(ErrTechnicianAlreadyInTeam))
		assert.False(t, IsConflict(ErrEquipmentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "duration", Message: "must be positive"}
		assert.Equal(t, "validation error: duration - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "must be positive"}
		assert.Equal(t, "validation error: must be positive", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("month", "must use the YYYY-MM format")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidRefreshToken))
		assert.True(t, IsAuthentication(ErrInvalidOldPassword))
		assert.False(t, IsAuthentication(ErrNotRequestOwner))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotRequestOwner))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("authentication and authorization do not overlap", func(t *testing.T) {
		assert.False(t, IsAuthentication(NewAuthorizationError("forbidden")))
		assert.False(t, IsAuthorization(NewAuthenticationError("who are you")))
	})
}

func TestHelperFunctionsWithPlainErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsConflict(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsAuthentication(plain))
	assert.False(t, IsAuthorization(plain))
}
