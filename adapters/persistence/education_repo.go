package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = "id, institution, degree, type, start_date, end_date, description, created_at"

func scanEducationItem(row pgx.Row) (*education.Item, error) {
	item := &education.Item{}
	err := row.Scan(
		&item.ID,
		&item.Institution,
		&item.Degree,
		&item.Type,
		&item.StartDate,
		&item.EndDate,
		&item.Description,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education item", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return item, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, item *education.Item) error {
	query := `
		INSERT INTO education_items (id, institution, degree, type, start_date, end_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Institution, item.Degree, item.Type,
		item.StartDate, item.EndDate, item.Description, item.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education item", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, item *education.Item) error {
	query := `
		UPDATE education_items SET
			institution = $2, degree = $3, type = $4, start_date = $5,
			end_date = $6, description = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		item.ID, item.Institution, item.Degree, item.Type,
		item.StartDate, item.EndDate, item.Description,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education item", item.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education_items WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education item", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education_items WHERE id = $1`, id)
	item, err := scanEducationItem(row)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("education item", id.String())
		}
		return nil, err
	}
	return item, nil
}

// List sorts start_date descending as raw text on purpose; see the domain
// package comment.
func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Item, error) {
	builder := psql.Select(educationColumns).
		From("education_items").
		OrderBy("start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education items", err)
	}
	defer rows.Close()

	items := make([]*education.Item, 0)
	for rows.Next() {
		item, err := scanEducationItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}
