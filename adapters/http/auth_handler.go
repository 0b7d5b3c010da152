package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AuthHandler struct {
	loginUseCase  *authUC.LoginUseCase
	logoutUseCase *authUC.LogoutUseCase
	logger        logger.Logger
}

func NewAuthHandler(loginUC *authUC.LoginUseCase, logoutUC *authUC.LogoutUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{loginUseCase: loginUC, logoutUseCase: logoutUC, logger: log}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request body", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{Password: req.Password})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": output.Token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := GetSessionTokenFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("no session token in context"))
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
