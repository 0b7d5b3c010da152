package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// The profile table is constrained to a single row (id = 1); the upsert keeps
// the singleton invariant at the schema level instead of in application code.
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT about_text, image_url, social_links, updated_at
		FROM profile
		WHERE id = 1
	`
	p := &profile.Profile{}
	var linkBytes []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&p.AboutText,
		&p.ImageURL,
		&linkBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Default(), nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if err := json.Unmarshal(linkBytes, &p.SocialLinks); err != nil {
		r.logger.Warn("Failed to unmarshal social_links", zap.Error(err))
		p.SocialLinks = []profile.SocialLink{}
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	linkBytes, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return apperror.NewInternal("failed to marshal social_links", err)
	}

	query := `
		INSERT INTO profile (id, about_text, image_url, social_links, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			about_text = EXCLUDED.about_text,
			image_url = EXCLUDED.image_url,
			social_links = EXCLUDED.social_links,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, p.AboutText, p.ImageURL, linkBytes, p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
