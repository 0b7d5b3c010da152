package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const portfolioColumns = "id, title, description, custom_html, image_url, is_logo, tags, link, created_at"

func scanPortfolioItem(row pgx.Row, l logger.Logger) (*portfolio.Item, error) {
	item := &portfolio.Item{}
	var tagBytes []byte

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.CustomHTML,
		&item.ImageURL,
		&item.IsLogo,
		&tagBytes,
		&item.Link,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio item", "")
		}
		return nil, apperror.NewInternal("failed to scan portfolio row", err)
	}

	if err := json.Unmarshal(tagBytes, &item.Tags); err != nil {
		l.Warn("Failed to unmarshal portfolio tags", zap.String("item_id", item.ID.String()), zap.Error(err))
		item.Tags = []string{}
	}

	return item, nil
}

func (r *postgresPortfolioRepo) Save(ctx context.Context, item *portfolio.Item) error {
	tagBytes, err := json.Marshal(item.Tags)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolio tags", err)
	}

	query := `
		INSERT INTO portfolio_items (id, title, description, custom_html, image_url, is_logo, tags, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		item.ID, item.Title, item.Description, item.CustomHTML,
		item.ImageURL, item.IsLogo, tagBytes, item.Link, item.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save portfolio item", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) Update(ctx context.Context, item *portfolio.Item) error {
	tagBytes, err := json.Marshal(item.Tags)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolio tags for update", err)
	}

	query := `
		UPDATE portfolio_items SET
			title = $2, description = $3, custom_html = $4, image_url = $5,
			is_logo = $6, tags = $7, link = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.Description, item.CustomHTML,
		item.ImageURL, item.IsLogo, tagBytes, item.Link,
	)
	if err != nil {
		return apperror.NewInternal("failed to update portfolio item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio item", item.ID.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete portfolio item", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio item", id.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+portfolioColumns+` FROM portfolio_items WHERE id = $1`, id)
	item, err := scanPortfolioItem(row, r.logger)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("portfolio item", id.String())
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresPortfolioRepo) List(ctx context.Context) ([]*portfolio.Item, error) {
	builder := psql.Select(portfolioColumns).
		From("portfolio_items").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build portfolio list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query portfolio items", err)
	}
	defer rows.Close()

	items := make([]*portfolio.Item, 0)
	for rows.Next() {
		item, err := scanPortfolioItem(rows, r.logger)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating portfolio rows", err)
	}
	return items, nil
}
