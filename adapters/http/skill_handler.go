package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SkillHandler struct {
	useCase *skillUC.SkillUseCase
	logger  logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{useCase: uc, logger: log}
}

func (h *SkillHandler) List(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]SkillItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToSkillItemDTO(item)
	}
	respondData(c, http.StatusOK, dtos)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	item, err := h.useCase.Create(c.Request.Context(), skillUC.CreateSkillInput{
		Name:     req.Name,
		Type:     req.Type,
		Value:    req.Value,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusCreated, ToSkillItemDTO(item))
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("skill item", c.Param("id")))
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	item, err := h.useCase.Update(c.Request.Context(), skillUC.UpdateSkillInput{
		ID:       id,
		Name:     req.Name,
		Type:     req.Type,
		Value:    req.Value,
		Category: req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, ToSkillItemDTO(item))
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("skill item", c.Param("id")))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
