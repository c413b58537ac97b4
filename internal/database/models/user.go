package models

// User represents an account that can sign in and act on the system
type User struct {
	BaseModel
	Username string   `json:"username" gorm:"uniqueIndex;not null;size:30" validate:"required,min=3,max=30"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName string   `json:"fullName" gorm:"not null;size:200" validate:"required,min=2,max=200"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`

	// Credential material. Never serialized.
	PasswordHash string `json:"-" gorm:"not null;size:100"`
	// SHA-256 of the refresh token on file; empty means no active session.
	RefreshTokenHash string `json:"-" gorm:"size:64"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
