package auth

import "context"

type UseCase interface {
	SignIn(ctx context.Context, input SignInInput) (SignInOutput, error)
}
