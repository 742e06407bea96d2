package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the profile record that is the single source of truth for the
// admin privilege. Historically the privilege could be granted either as
// role=admin or as the boolean flag; both are honored and both are kept in
// sync by the role-management operations.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	FullName  string         `json:"full_name" gorm:"not null"`
	Role      string         `json:"role" gorm:"not null;default:'user'"`
	Admin     bool           `json:"is_admin" gorm:"column:is_admin;default:false"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin privilege by either
// marker.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Admin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(user *User) error
	Count() (int64, error)
}
