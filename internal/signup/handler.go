package signup

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uiseong-market/form-server/internal/shared/handler"
	"github.com/uiseong-market/form-server/internal/web"
)

type SignupHandler struct {
	signupService *SignupService
}

func NewSignupHandler(signupService *SignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// Form renders the signup form
func (h *SignupHandler) Form(c *gin.Context) {
	handler.RenderForm(c, web.SignupTemplate)
}

// Signup registers the user and redirects to the home page
func (h *SignupHandler) Signup(c *gin.Context) {
	var form Form
	if !handler.BindForm(c, web.SignupTemplate, &form) {
		return
	}

	if err := h.signupService.Signup(c.Request.Context(), &form); err != nil {
		handler.RenderFormError(c, web.SignupTemplate, err, form.Old())
		return
	}

	c.Redirect(http.StatusFound, "/")
}
