package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/validator"
)

// BindForm parses a form-encoded request body into obj.
// Field rules are checked later by the domain validator, not by gin.
// Returns true if binding succeeded, false if failed (form already re-rendered)
//
// Usage:
//
//	var form StoreForm
//	if !handler.BindForm(c, web.StoreFormTemplate, &form) {
//	    return
//	}
func BindForm(c *gin.Context, template string, obj any) bool {
	if err := c.ShouldBindWith(obj, binding.Form); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		c.HTML(sharedError.InvalidRequest.Status, template, gin.H{
			"error": sharedError.InvalidRequest.Message,
			"old":   map[string]string{},
		})
		return false
	}
	return true
}

// RenderForm renders an empty form
func RenderForm(c *gin.Context, template string) {
	c.HTML(http.StatusOK, template, gin.H{"old": map[string]string{}})
}

// RenderFormError re-renders a form with the error message and the previous input
//
// Usage:
//
//	if err := service.Submit(ctx, &form); err != nil {
//	    handler.RenderFormError(c, web.StoreFormTemplate, err, form.Old())
//	    return
//	}
func RenderFormError(c *gin.Context, template string, err error, old map[string]string) {
	// Add error to context for middleware logging
	c.Error(err)

	resp := ResolveError(err)
	c.HTML(resp.Status, template, gin.H{
		"error": resp.Message,
		"code":  resp.Code,
		"old":   old,
	})
}

// ResolveError maps an error to the response shown to the user.
// Field errors keep their message, document store failures keep their detail.
func ResolveError(err error) sharedError.ErrorResponse {
	if resp, ok := validator.ToErrorResponse(err); ok {
		return *resp
	}

	var persistenceErr *sharedError.PersistenceError
	if errors.As(err, &persistenceErr) {
		return sharedError.NewPersistenceResponse(persistenceErr)
	}

	if resp, ok := sharedError.ResolveDomainError(err); ok {
		return resp
	}

	return sharedError.InternalServerError
}
