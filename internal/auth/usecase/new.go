package usecase

import (
	userRepo "inventory-management/internal/user/repository"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

type implUseCase struct {
	users      userRepo.Repository
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new auth UseCase implementation.
func New(users userRepo.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		users:      users,
		jwtManager: jwtManager,
		l:          l,
	}
}
