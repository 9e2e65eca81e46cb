// Package repository persists slide deck projects.
package repository

import (
	"context"
	"errors"

	"github.com/calebmoss/deckgen/internal/domain"
)

// ErrProjectNotFound is returned when no project matches the given ID.
var ErrProjectNotFound = errors.New("project not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// GetByIDPrefix resolves a project from a unique ID prefix, so CLI
	// users can pass the short display ID.
	GetByIDPrefix(ctx context.Context, prefix string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
