package usecase

import (
	"context"
	"fmt"
	"strings"

	"inventory-management/internal/auth"
	"inventory-management/internal/user"
	userRepo "inventory-management/internal/user/repository"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/scope"
)

// SignIn checks the credentials and issues an access token for the user.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SignInOutput, error) {
	username := strings.TrimSpace(input.Username)

	fields := pkgErrors.NewFieldErrors()
	if username == "" {
		fields.Add(auth.FieldUsername, auth.MsgUsernameRequired)
	}
	if input.Password == "" {
		fields.Add(auth.FieldPassword, auth.MsgPasswordRequired)
	}
	if !fields.Empty() {
		return auth.SignInOutput{}, pkgErrors.NewValidationError(fields)
	}

	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn GetOneUser: %v", err)
		return auth.SignInOutput{}, err
	}
	if u.ID == "" || !user.CheckPassword(u.PasswordHash, input.Password) {
		uc.l.Warnf(ctx, "uc.SignIn: rejected credentials for %q", username)
		return auth.SignInOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.CreateToken(scope.Scope{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn CreateToken: %v", err)
		return auth.SignInOutput{}, fmt.Errorf("creating token: %w", err)
	}

	return auth.SignInOutput{AccessToken: token, User: u}, nil
}
