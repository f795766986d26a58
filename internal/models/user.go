package models

// Role represents the privilege level carried in a token
type Role int

// Role constants
const (
	RoleStudent Role = 1
	RoleAdmin   Role = 2
)

// String returns the wire name of the role
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	default:
		return "student"
	}
}

// User represents a registered user
type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// UserResponse is the public view of a user returned by auth endpoints
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToResponse converts a user into its public view
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role.String(),
	}
}

// SignupRequest represents a signup request body
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// Identity is the authenticated subject reconstructed from a verified token
type Identity struct {
	UserID int64 `json:"id"`
	Role   Role  `json:"role"`
}
