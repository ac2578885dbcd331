package dto

// SignupRequest represents the signup form
type SignupRequest struct {
	Username string `form:"username" binding:"required,min=3,max=80,username"`
	Password string `form:"password" binding:"required,min=6,max=120"`
	Role     string `form:"role" binding:"required"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
