package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/logging"
)

type templateRepo struct {
	db *sql.DB
}

// NewTemplateRepository creates a new SQLite-backed template repository.
func NewTemplateRepository(db *sql.DB) repository.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tmpl *entity.Template) error {
	log := logging.FromContext(ctx)

	if err := tmpl.Validate(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO templates (title, config, active, created_at) VALUES (?, ?, ?, ?)`,
		tmpl.Title, string(tmpl.Config), tmpl.Active, tmpl.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	tmpl.ID = id

	log.Debug().Int64("template_id", id).Str("title", tmpl.Title).Msg("template created")
	return nil
}

func (r *templateRepo) List(ctx context.Context) ([]*entity.Template, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, config, active, created_at FROM templates ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, rows.Err()
}

func (r *templateRepo) FindByID(ctx context.Context, id int64) (*entity.Template, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, config, active, created_at FROM templates WHERE id = ?`, id,
	)
	tmpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrTemplateNotFound
	}
	return tmpl, err
}

func (r *templateRepo) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE templates SET active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *templateRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM templates WHERE active = 1`,
	).Scan(&count)
	return count, err
}

func (r *templateRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*entity.Template, error) {
	var tmpl entity.Template
	var config string
	if err := row.Scan(&tmpl.ID, &tmpl.Title, &config, &tmpl.Active, &tmpl.CreatedAt); err != nil {
		return nil, err
	}
	tmpl.Config = []byte(config)
	return &tmpl, nil
}

// requireRow maps a zero-row update or delete to a not-found error.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrTemplateNotFound
	}
	return nil
}
