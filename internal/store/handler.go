package store

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/handler"
	"github.com/uiseong-market/form-server/internal/web"
)

type StoreHandler struct {
	storeService *StoreService
}

func NewStoreHandler(storeService *StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// Form renders the store registration form
func (h *StoreHandler) Form(c *gin.Context) {
	handler.RenderForm(c, web.StoreFormTemplate)
}

// Submit validates and stores the submission, then renders the detail view
func (h *StoreHandler) Submit(c *gin.Context) {
	var form Form
	if !handler.BindForm(c, web.StoreFormTemplate, &form) {
		return
	}

	record, err := h.storeService.Submit(c.Request.Context(), &form)
	if err != nil {
		old := form.Old()
		var persistenceErr *sharedError.PersistenceError
		if errors.As(err, &persistenceErr) {
			// validated but not stored: show the normalized values
			old = record.Old()
		}
		handler.RenderFormError(c, web.StoreFormTemplate, err, old)
		return
	}

	c.HTML(http.StatusOK, web.StoreDetailTemplate, gin.H{"store": record})
}
