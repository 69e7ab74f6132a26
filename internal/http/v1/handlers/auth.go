package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/core/apperror"
	"storecore/internal/core/appctx"
	"storecore/internal/domain/auth"
	"storecore/internal/http/v1/dto"
)

// AuthHandler serves authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	svc *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Login authenticates credentials and returns an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	token, err := h.svc.Authenticate(c.Request.Context(), auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromToken(token))
}

// Me returns the authenticated caller. Requires the Auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := appctx.GetUser(c.Request.Context())
	if !ok {
		h.Error(c, apperror.NewInvalidCredential("incorrect username or password"))
		return
	}
	h.OK(c, dto.FromUserContext(user))
}
