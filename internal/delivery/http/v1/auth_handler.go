package v1

import (
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", handler.Login)
	protected.GET("/auth/verify", handler.Verify)
}

// Login godoc
// @Summary      Admin login
// @Description  Exchange the admin password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Password"
// @Success      200          {object}  domain.AuthResponse
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Password is required"))
		return
	}

	res, err := h.authUC.Login(c.Request.Context(), req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Verify godoc
// @Summary      Check the current token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/verify [get]
// @Security     BearerAuth
func (h *AuthHandler) Verify(c *gin.Context) {
	response.Success(c, http.StatusOK, "Token is valid", nil)
}
