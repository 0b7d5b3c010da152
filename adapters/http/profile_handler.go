package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	useCase *profileUC.ProfileUseCase
	logger  logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{useCase: uc, logger: log}
}

// Get never 404s: an empty store yields the default profile so the UI has no
// null branch.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.useCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, ToProfileDTO(p))
}

// Upsert is the only write path for the profile; there is no separate create.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	p, err := h.useCase.Upsert(c.Request.Context(), profileUC.UpsertProfileInput{
		AboutText:   req.AboutText,
		ImageURL:    req.ImageURL,
		SocialLinks: req.ToDomainLinks(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, ToProfileDTO(p))
}
