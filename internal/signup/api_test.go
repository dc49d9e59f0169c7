package signup_test

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
	"github.com/uiseong-market/form-server/internal/shared/docstore"
	"github.com/uiseong-market/form-server/internal/shared/hash"
	"github.com/uiseong-market/form-server/internal/shared/testutil"
	"github.com/uiseong-market/form-server/internal/shared/validator"
	"github.com/uiseong-market/form-server/internal/signup"
)

// setupTestEnvironment creates all dependencies needed for signup handler tests
func setupTestEnvironment(t *testing.T) (*gin.Engine, *testutil.MockDocStore) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	docs := testutil.NewMockDocStore(docstore.NewGormStore(db, 5*time.Second))

	// Setup dependencies
	engine, err := validator.New()
	require.NoError(t, err)
	signupValidator := signup.NewValidator(engine, hash.NewBcrypt(bcrypt.MinCost))
	signupService := signup.NewSignupService(signupValidator, signup.NewUserRepository(docs), docs)
	signupHandler := signup.NewSignupHandler(signupService)

	router := testutil.SetupTestRouter()
	router.GET("/signup", signupHandler.Form)
	router.POST("/signup", signupHandler.Signup)

	return router, docs
}

func signupValues() url.Values {
	return url.Values{
		"name":           {"김민수"},
		"nickname":       {"민수"},
		"id":             {"minsu99"},
		"password":       {"password123"},
		"password_check": {"password123"},
		"birthday":       {"990101-1"},
		"phone_number":   {"010-1234-5678"},
	}
}

func postSignup(t *testing.T, router *gin.Engine, values url.Values) string {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   values,
	})
	require.Equal(t, http.StatusFound, recorder.Code, recorder.Body.String())
	return recorder.Header().Get("Location")
}

func TestSignupForm(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/signup",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `action="/signup"`)
	assert.NotContains(t, recorder.Body.String(), `class="error"`)
}

func TestSignup_Success(t *testing.T) {
	// Given
	router, docs := setupTestEnvironment(t)

	// When
	location := postSignup(t, router, signupValues())

	// Then: redirected home
	assert.Equal(t, "/", location)

	// Then: stored with hashed password and masked birthday
	stored, err := docs.Query(context.Background(), "users", "id", "minsu99")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	user := stored[0]
	assert.Equal(t, "김민수", user["name"])
	assert.Equal(t, "민수", user["nickname"])
	assert.Equal(t, "990101******", user["birthday"])
	assert.Equal(t, "010-1234-5678", user["phone_number"])
	assert.NotEqual(t, "password123", user["password"])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user["password"]), []byte("password123")))
	assert.NotContains(t, user, "password_check")
}

func TestSignup_ValidationErrorRerendersForm(t *testing.T) {
	testCases := []struct {
		name        string
		field       string
		value       string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "password mismatch",
			field:       "password_check",
			value:       "password124",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "비밀번호가 일치하지 않습니다.",
		},
		{
			name:        "invalid birthday",
			field:       "birthday",
			value:       "19990101",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "생년월일 형식이 올바르지 않습니다. 예: 990101-1",
		},
		{
			name:        "invalid phone",
			field:       "phone_number",
			value:       "010 1234 5678",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "전화번호 형식이 올바르지 않습니다. 예: 010-1234-5678",
		},
		{
			name:        "missing name",
			field:       "name",
			value:       "",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "name: 필수 항목을 입력해 주세요.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			router, docs := setupTestEnvironment(t)
			values := signupValues()
			values.Set(tc.field, tc.value)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/signup",
				Form:   values,
			})

			// Then: form re-rendered with the message, old input kept, passwords dropped
			assert.Equal(t, tc.wantStatus, recorder.Code)
			body := recorder.Body.String()
			assert.Contains(t, body, template.HTMLEscapeString(tc.wantMessage))
			assert.Contains(t, body, `value="minsu99"`)
			assert.NotContains(t, body, "password123")

			// Then: no uniqueness query and no write
			assert.Zero(t, docs.ExistsCalls)
			assert.Zero(t, docs.AddCalls)
		})
	}
}

func TestSignup_DuplicateNickname(t *testing.T) {
	// Given: "민수" already signed up
	router, docs := setupTestEnvironment(t)
	postSignup(t, router, signupValues())

	values := signupValues()
	values.Set("id", "another01")

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   values,
	})

	// Then
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "이미 가입된 닉네임입니다.")
	assert.Equal(t, 1, docs.AddCalls)
}

func TestSignup_DuplicateID(t *testing.T) {
	router, docs := setupTestEnvironment(t)
	postSignup(t, router, signupValues())

	values := signupValues()
	values.Set("nickname", "영희")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   values,
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "이미 가입된 아이디입니다.")
	assert.Equal(t, 1, docs.AddCalls)
}

func TestSignup_ConcurrentDuplicateCaughtByUniqueIndex(t *testing.T) {
	// Given: a user exists, but the pre-check misses it as if both requests raced
	router, docs := setupTestEnvironment(t)
	postSignup(t, router, signupValues())
	docs.ExistsWithFieldFunc = func(context.Context, string, string, string) (bool, error) {
		return false, nil
	}

	values := signupValues()
	values.Set("nickname", "영희")

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   values,
	})

	// Then: the write is rejected with the same message as the pre-check
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "이미 가입된 아이디입니다.")

	// Then: still exactly one user
	stored, err := docs.Query(context.Background(), "users", "id", "minsu99")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSignup_UniquenessReadFailure(t *testing.T) {
	// Given
	router, docs := setupTestEnvironment(t)
	docs.ExistsWithFieldFunc = func(context.Context, string, string, string) (bool, error) {
		return false, errors.New("ORA-03113: end-of-file on communication channel")
	}

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   signupValues(),
	})

	// Then: reported as a persistence error, never written
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "데이터 저장 오류: ORA-03113")
	assert.Zero(t, docs.AddCalls)
}

func TestSignup_WriteFailure(t *testing.T) {
	router, docs := setupTestEnvironment(t)
	docs.AddFunc = func(context.Context, string, docstore.Document, ...docstore.AddOption) (string, error) {
		return "", errors.New("connection reset")
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/signup",
		Form:   signupValues(),
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "데이터 저장 오류: connection reset")
	assert.Contains(t, body, `value="민수"`)
	assert.NotContains(t, body, "password123")
}
