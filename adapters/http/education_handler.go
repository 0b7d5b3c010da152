package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type EducationHandler struct {
	useCase *educationUC.EducationUseCase
	logger  logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{useCase: uc, logger: log}
}

func (h *EducationHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]EducationItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToEducationItemDTO(item)
	}
	respondData(c, http.StatusOK, dtos)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	item, err := h.useCase.Create(c.Request.Context(), educationUC.CreateEducationInput{
		Institution: req.Institution,
		Degree:      req.Degree,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusCreated, ToEducationItemDTO(item))
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("education item", c.Param("id")))
		return
	}

	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	item, err := h.useCase.Update(c.Request.Context(), educationUC.UpdateEducationInput{
		ID:          id,
		Institution: req.Institution,
		Degree:      req.Degree,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, ToEducationItemDTO(item))
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("education item", c.Param("id")))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
