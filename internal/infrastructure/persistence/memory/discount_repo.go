// Package memory provides in-memory repository implementations. They back
// ephemeral setups (demos, tests, serve --no-db) with the same contracts as
// the SQLite repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
)

type discountRepo struct {
	mu   sync.RWMutex
	byID map[int64]*entity.Discount
}

// NewDiscountRepository creates an empty in-memory discount catalog.
func NewDiscountRepository() repository.DiscountRepository {
	return &discountRepo{byID: make(map[int64]*entity.Discount)}
}

// NewSeededDiscountRepository creates a catalog preloaded with sample
// records, useful for demos and development.
func NewSeededDiscountRepository() repository.DiscountRepository {
	repo := &discountRepo{byID: make(map[int64]*entity.Discount)}
	for _, d := range sampleDiscounts() {
		repo.byID[d.ID] = d
	}
	return repo
}

func sampleDiscounts() []*entity.Discount {
	return []*entity.Discount{
		{
			ID:      1,
			Title:   "Summer Sale 2024",
			Type:    entity.DiscountPercentage,
			Value:   20,
			Status:  entity.DiscountActive,
			Created: "May 15, 2024",
			Usage:   "45 / 100",
		},
		{
			ID:      2,
			Title:   "Buy 2 Get 1 Free",
			Type:    entity.DiscountBOGO,
			Value:   1,
			Status:  entity.DiscountActive,
			Created: "Jun 1, 2024",
			Usage:   "120 / Unlimited",
		},
		{
			ID:      3,
			Title:   "New Year Promo",
			Type:    entity.DiscountFixed,
			Value:   500,
			Status:  entity.DiscountScheduled,
			Created: "Dec 20, 2024",
			Usage:   "0 / 200",
		},
	}
}

func (r *discountRepo) ListAll(context.Context) ([]*entity.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(*entity.Discount) bool { return true }), nil
}

func (r *discountRepo) ListActive(context.Context) ([]*entity.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot((*entity.Discount).IsActive), nil
}

// snapshot copies matching records sorted by ID. Callers get values detached
// from the store.
func (r *discountRepo) snapshot(keep func(*entity.Discount) bool) []*entity.Discount {
	var out []*entity.Discount
	for _, d := range r.byID {
		if keep(d) {
			clone := *d
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *discountRepo) FindByID(_ context.Context, id int64) (*entity.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrDiscountNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *discountRepo) Add(_ context.Context, d *entity.Discount) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextIDLocked()
	clone := *d
	r.byID[d.ID] = &clone
	return nil
}

func (r *discountRepo) Update(_ context.Context, id int64, upd repository.DiscountUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return entity.ErrDiscountNotFound
	}

	next := *d
	if upd.Title != nil {
		next.Title = *upd.Title
	}
	if upd.Value != nil {
		next.Value = *upd.Value
	}
	if upd.Status != nil {
		next.Status = *upd.Status
	}
	if upd.Usage != nil {
		next.Usage = *upd.Usage
	}
	if err := next.Validate(); err != nil {
		return err
	}

	r.byID[id] = &next
	return nil
}

func (r *discountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return entity.ErrDiscountNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *discountRepo) NextID(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextIDLocked(), nil
}

// nextIDLocked follows the max-plus-one convention: IDs grow from the
// highest record currently in the catalog.
func (r *discountRepo) nextIDLocked() int64 {
	var maxID int64
	for id := range r.byID {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
