package repository

import (
	"context"

	"github.com/merchkit/combobuilder/internal/domain/entity"
)

// DiscountUpdate carries a partial update; nil fields are left untouched.
type DiscountUpdate struct {
	Title  *string
	Value  *float64
	Status *entity.DiscountStatus
	Usage  *string
}

// DiscountRepository defines operations for the local discount catalog.
type DiscountRepository interface {
	// ListAll retrieves every catalog entry, ordered by ID.
	ListAll(ctx context.Context) ([]*entity.Discount, error)

	// ListActive retrieves only active entries, ordered by ID.
	ListActive(ctx context.Context) ([]*entity.Discount, error)

	// FindByID retrieves one entry.
	FindByID(ctx context.Context, id int64) (*entity.Discount, error)

	// Add stores a new entry under the next free ID and returns it.
	Add(ctx context.Context, d *entity.Discount) error

	// Update applies a partial update to an existing entry.
	Update(ctx context.Context, id int64, upd DiscountUpdate) error

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id int64) error

	// NextID returns the ID the next Add will assign.
	NextID(ctx context.Context) (int64, error)
}
