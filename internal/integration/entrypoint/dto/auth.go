// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/musicplayer/backend/internal/domain/entity"

// SignupRequest represents the request body for user registration.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse represents the response for a successful registration.
type SignupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// TokenResponse represents the response for a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ToSignupResponse converts a registered user and its token to a SignupResponse DTO.
func ToSignupResponse(user *entity.User, token string) SignupResponse {
	return SignupResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}
}
