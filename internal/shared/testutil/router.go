package testutil

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/uiseong-market/form-server/internal/web"
)

// SetupTestRouter creates a test Gin router without middleware, with the HTML templates loaded
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	return router
}

// TestRequest describes a test HTTP request; Form is sent form-encoded
type TestRequest struct {
	Method  string
	URL     string
	Form    url.Values
	Headers map[string]string
}

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if req.Form != nil {
		bodyReader = strings.NewReader(req.Form.Encode())
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}
