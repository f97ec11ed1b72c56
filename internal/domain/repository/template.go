package repository

import (
	"context"

	"github.com/merchkit/combobuilder/internal/domain/entity"
)

// TemplateRepository defines operations for saved combo design persistence.
type TemplateRepository interface {
	// Create stores a new template and assigns its ID.
	Create(ctx context.Context, tmpl *entity.Template) error

	// List retrieves all templates, newest first.
	List(ctx context.Context) ([]*entity.Template, error)

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Template, error)

	// SetActive marks a template active or inactive.
	SetActive(ctx context.Context, id int64, active bool) error

	// CountActive returns how many templates are currently active.
	CountActive(ctx context.Context) (int64, error)

	// Delete removes a template by ID.
	Delete(ctx context.Context, id int64) error
}
