package auth

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/session"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type LogoutUseCase struct {
	sessionRepo session.Repository
	logger      logger.Logger
}

func NewLogoutUseCase(repo session.Repository, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: repo, logger: log}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	return uc.sessionRepo.Delete(ctx, token)
}
