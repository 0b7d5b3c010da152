package auth

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio-api/internal/domain/session"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

// LoginUseCase gates the admin write path behind the single shared password.
// A missing configured password is a server fault, never an auth failure.
type LoginUseCase struct {
	sessionRepo   session.Repository
	adminPassword string
	logger        logger.Logger
}

func NewLoginUseCase(repo session.Repository, adminPassword string, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		sessionRepo:   repo,
		adminPassword: adminPassword,
		logger:        log,
	}
}

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	Token string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	if uc.adminPassword == "" {
		err := apperror.NewMisconfigured("ADMIN_PASSWORD is not set")
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPassword(input.Password, uc.adminPassword) {
		err := apperror.NewUnauthorized("admin password mismatch")
		span.RecordError(err)
		return nil, err
	}

	sess, err := uc.sessionRepo.Create(ctx)
	if err != nil {
		uc.logger.Error("Failed to create session", err)
		span.RecordError(err)
		return nil, err
	}

	return &LoginOutput{Token: sess.Token}, nil
}
