package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/logging"
)

type discountRepo struct {
	db *sql.DB
}

// NewDiscountRepository creates a new SQLite-backed discount catalog.
func NewDiscountRepository(db *sql.DB) repository.DiscountRepository {
	return &discountRepo{db: db}
}

const discountColumns = `id, title, code, type, value, status, created, usage`

func (r *discountRepo) ListAll(ctx context.Context) ([]*entity.Discount, error) {
	return r.list(ctx, `SELECT `+discountColumns+` FROM discounts ORDER BY id`)
}

func (r *discountRepo) ListActive(ctx context.Context) ([]*entity.Discount, error) {
	return r.list(ctx, `SELECT `+discountColumns+` FROM discounts WHERE status = 'active' ORDER BY id`)
}

func (r *discountRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Discount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Discount
	for rows.Next() {
		var d entity.Discount
		if err := rows.Scan(&d.ID, &d.Title, &d.Code, &d.Type, &d.Value, &d.Status, &d.Created, &d.Usage); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *discountRepo) FindByID(ctx context.Context, id int64) (*entity.Discount, error) {
	var d entity.Discount
	err := r.db.QueryRowContext(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE id = ?`, id,
	).Scan(&d.ID, &d.Title, &d.Code, &d.Type, &d.Value, &d.Status, &d.Created, &d.Usage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepo) Add(ctx context.Context, d *entity.Discount) error {
	log := logging.FromContext(ctx)

	if err := d.Validate(); err != nil {
		return err
	}

	// IDs continue from the highest existing one instead of reusing holes
	// left by deletions.
	id, err := r.NextID(ctx)
	if err != nil {
		return err
	}
	d.ID = id

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO discounts (`+discountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Title, d.Code, d.Type, d.Value, d.Status, d.Created, d.Usage,
	)
	if err != nil {
		return err
	}

	log.Debug().Int64("discount_id", d.ID).Str("title", d.Title).Msg("discount added to catalog")
	return nil
}

func (r *discountRepo) Update(ctx context.Context, id int64, upd repository.DiscountUpdate) error {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if upd.Title != nil {
		current.Title = *upd.Title
	}
	if upd.Value != nil {
		current.Value = *upd.Value
	}
	if upd.Status != nil {
		current.Status = *upd.Status
	}
	if upd.Usage != nil {
		current.Usage = *upd.Usage
	}
	if err := current.Validate(); err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE discounts SET title = ?, value = ?, status = ?, usage = ? WHERE id = ?`,
		current.Title, current.Value, current.Status, current.Usage, id,
	)
	return err
}

func (r *discountRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrDiscountNotFound
	}
	return nil
}

func (r *discountRepo) NextID(ctx context.Context) (int64, error) {
	var maxID sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(id) FROM discounts`).Scan(&maxID)
	if err != nil {
		return 0, err
	}
	return maxID.Int64 + 1, nil
}
