package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiseong-market/form-server/internal/shared/logger"
	"github.com/uiseong-market/form-server/internal/shared/middleware"
	"github.com/uiseong-market/form-server/internal/shared/testutil"
)

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/signup", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	// Given
	router := testutil.SetupTestRouter()
	router.Use(middleware.CORS(testutil.NewTestConfig()))
	router.POST("/signup", func(c *gin.Context) { c.Status(http.StatusOK) })

	// When
	recorder := preflight(router, "http://localhost:3000")

	// Then
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.CORS(testutil.NewTestConfig()))
	router.POST("/signup", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := preflight(router, "http://evil.example")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	validID := uuid.NewString()

	testCases := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "no header", header: ""},
		{name: "valid uuid is kept", header: validID, wantSame: true},
		{name: "arbitrary value is replaced", header: "<script>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			router := testutil.SetupTestRouter()
			router.Use(middleware.RequestID())
			var seen string
			router.GET("/", func(c *gin.Context) {
				seen = middleware.GetRequestID(c)
				c.Status(http.StatusOK)
			})

			// When
			headers := map[string]string{}
			if tc.header != "" {
				headers[middleware.RequestIDHeader] = tc.header
			}
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/",
				Headers: headers,
			})

			// Then
			got := recorder.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, seen, got)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tc.wantSame {
				assert.Equal(t, tc.header, got)
			} else {
				assert.NotEqual(t, tc.header, got)
			}
		})
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.Timeout(time.Second))
	var hasDeadline bool
	router.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/"})

	assert.True(t, hasDeadline)
}

func TestLoggerMiddleware_BindsRequestLogger(t *testing.T) {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID(), middleware.LoggerMiddleware())
	var bound bool
	router.GET("/", func(c *gin.Context) {
		bound = logger.FromContext(c.Request.Context()) != slog.Default()
		c.Status(http.StatusOK)
	})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, bound)
}
