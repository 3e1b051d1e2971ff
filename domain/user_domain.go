package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "registration successful"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"

	MessageFailedRegister       = "failed to register"
	MessageFailedLogin          = "invalid username or password"
	MessageFailedGetMe          = "failed to retrieve user"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"

	ErrEmailAlreadyRegistered    = errors.New("email already registered")
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
	ErrInvalidRole               = errors.New("invalid role")
	ErrInvalidCredentials        = errors.New("invalid username or password")
	ErrUserNotFound              = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=6"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=donor volunteer admin"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Points   int    `json:"points"`
	}

	LeaderboardEntry struct {
		Username string `json:"username"`
		Points   int    `json:"points"`
	}
)
