package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	uploadUseCase *mediaUC.UploadMediaUseCase
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadMediaUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploadUseCase: uploadUC, logger: log}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadUseCase.Execute(c.Request.Context(), mediaUC.UploadMediaInput{File: file})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"url": output.URL})
}
