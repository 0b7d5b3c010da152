package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type PortfolioHandler struct {
	createUseCase *portfolioUC.CreatePortfolioUseCase
	listUseCase   *portfolioUC.ListPortfolioUseCase
	updateUseCase *portfolioUC.UpdatePortfolioUseCase
	deleteUseCase *portfolioUC.DeletePortfolioUseCase
	logger        logger.Logger
}

func NewPortfolioHandler(
	createUC *portfolioUC.CreatePortfolioUseCase,
	listUC *portfolioUC.ListPortfolioUseCase,
	updateUC *portfolioUC.UpdatePortfolioUseCase,
	deleteUC *portfolioUC.DeletePortfolioUseCase,
	log logger.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        log,
	}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PortfolioItemDTO, len(output.Items))
	for i, item := range output.Items {
		dtos[i] = ToPortfolioItemDTO(item)
	}
	respondData(c, http.StatusOK, dtos)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	input := portfolioUC.CreatePortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		CustomHTML:  req.CustomHTML,
		ImageURL:    req.ImageURL,
		IsLogo:      req.IsLogo,
		Tags:        req.Tags,
		Link:        req.Link,
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusCreated, ToPortfolioItemDTO(output.Item))
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("portfolio item", c.Param("id")))
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	input := portfolioUC.UpdatePortfolioInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CustomHTML:  req.CustomHTML,
		ImageURL:    req.ImageURL,
		IsLogo:      req.IsLogo,
		Tags:        req.Tags,
		Link:        req.Link,
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, ToPortfolioItemDTO(output.Item))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewNotFound("portfolio item", c.Param("id")))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
