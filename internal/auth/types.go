package auth

import "inventory-management/internal/user"

// --- UseCase Inputs ---

type SignInInput struct {
	Username string
	Password string
}

// --- UseCase Outputs ---

type SignInOutput struct {
	AccessToken string
	User        user.User
}
