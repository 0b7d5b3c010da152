package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

const skillColumns = "id, name, type, value, category, created_at"

func scanSkillItem(row pgx.Row) (*skill.Item, error) {
	item := &skill.Item{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Type,
		&item.Value,
		&item.Category,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill item", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return item, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, item *skill.Item) error {
	query := `
		INSERT INTO skill_items (id, name, type, value, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Type, item.Value, item.Category, item.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save skill item", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, item *skill.Item) error {
	query := `
		UPDATE skill_items SET
			name = $2, type = $3, value = $4, category = $5
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Type, item.Value, item.Category,
	)
	if err != nil {
		return apperror.NewInternal("failed to update skill item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill item", item.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skill_items WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill item", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*skill.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skill_items WHERE id = $1`, id)
	item, err := scanSkillItem(row)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("skill item", id.String())
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Item, error) {
	builder := psql.Select(skillColumns).
		From("skill_items").
		OrderBy("category ASC", "name ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill items", err)
	}
	defer rows.Close()

	items := make([]*skill.Item, 0)
	for rows.Next() {
		item, err := scanSkillItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return items, nil
}
