package models

// User is a locally registered shopper. Passwords are kept and compared
// as entered; this storefront does not implement credential security.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignupRequest is the signup form.
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public-facing user data
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ToResponse drops the password.
func (u User) ToResponse() UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}
