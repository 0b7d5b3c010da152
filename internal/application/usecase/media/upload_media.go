package media

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const uploadFolder = "portfolio"

// UploadMediaUseCase hosts an admin-supplied image and hands back the URL.
// The URL is opaque to the rest of the system; items just store it in their
// imageUrl field.
type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(uploader service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: uploader, logger: log}
}

type UploadMediaInput struct {
	File io.Reader
}

type UploadMediaOutput struct {
	URL string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	url, err := uc.uploader.Upload(ctx, input.File, uploadFolder, uuid.NewString())
	if err != nil {
		return nil, apperror.NewInternal("media upload failed", err)
	}
	return &UploadMediaOutput{URL: url}, nil
}
