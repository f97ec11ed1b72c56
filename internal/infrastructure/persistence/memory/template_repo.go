package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
)

type templateRepo struct {
	mu     sync.RWMutex
	byID   map[int64]*entity.Template
	nextID int64
}

// NewTemplateRepository creates an empty in-memory template store.
func NewTemplateRepository() repository.TemplateRepository {
	return &templateRepo{byID: make(map[int64]*entity.Template), nextID: 1}
}

func (r *templateRepo) Create(_ context.Context, tmpl *entity.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl.ID = r.nextID
	r.nextID++
	clone := *tmpl
	r.byID[tmpl.ID] = &clone
	return nil
}

func (r *templateRepo) List(context.Context) ([]*entity.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Template, 0, len(r.byID))
	for _, tmpl := range r.byID {
		clone := *tmpl
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *templateRepo) FindByID(_ context.Context, id int64) (*entity.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrTemplateNotFound
	}
	clone := *tmpl
	return &clone, nil
}

func (r *templateRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl, ok := r.byID[id]
	if !ok {
		return entity.ErrTemplateNotFound
	}
	tmpl.Active = active
	return nil
}

func (r *templateRepo) CountActive(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, tmpl := range r.byID {
		if tmpl.Active {
			count++
		}
	}
	return count, nil
}

func (r *templateRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return entity.ErrTemplateNotFound
	}
	delete(r.byID, id)
	return nil
}
