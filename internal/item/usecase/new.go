package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"inventory-management/internal/item/repository"
	"inventory-management/pkg/log"
)

const tracerName = "inventory-management/internal/item/usecase"

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		l:      l,
		tracer: otel.Tracer(tracerName),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}
