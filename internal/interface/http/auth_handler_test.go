package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/21musie/Caxora/internal/application"
	"github.com/21musie/Caxora/internal/domain/entity"
	"github.com/21musie/Caxora/internal/domain/repository"
	handlers "github.com/21musie/Caxora/internal/interface/http"
	"github.com/21musie/Caxora/internal/interface/middleware"
	"github.com/21musie/Caxora/pkg/helpers"
	"github.com/21musie/Caxora/pkg/validation"
)

// memRepo is the same in-memory credential store shape used by the service
// tests, duplicated here to keep the packages independent.
type memRepo struct {
	users map[string]*entity.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*entity.User)}
}

func (r *memRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) Insert(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return repository.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrEmailTaken
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) Save(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

var testJWT = helpers.NewJWTManager("testsecret", "Caxora", "CaxoraUsers", time.Hour)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := application.NewService(newMemRepo(), helpers.BcryptHasher{Cost: bcrypt.MinCost}, testJWT, nil)
	h := handlers.NewAuthHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", middleware.Auth(testJWT), h.Me)
	api.GET("/health", handlers.NewHealthHandler(nil).Health)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const aliceBody = `{"username":"alice","email":"a@x.com","password":"secret1","fullName":"Alice A"}`

func registerAlice(t *testing.T, r *gin.Engine) application.AuthResult {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", aliceBody, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res application.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.True(t, res.Success)
	return res
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)
	res := registerAlice(t, r)

	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "farmer", res.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing username",
			body:      `{"email":"a@x.com","password":"secret1","fullName":"Alice A"}`,
			wantField: "username",
		},
		{
			name:      "username too short",
			body:      `{"username":"al","email":"a@x.com","password":"secret1","fullName":"Alice A"}`,
			wantField: "username",
		},
		{
			name:      "username bad charset",
			body:      `{"username":"al ice!","email":"a@x.com","password":"secret1","fullName":"Alice A"}`,
			wantField: "username",
		},
		{
			name:      "invalid email",
			body:      `{"username":"alice","email":"not-an-email","password":"secret1","fullName":"Alice A"}`,
			wantField: "email",
		},
		{
			name:      "password too short",
			body:      `{"username":"alice","email":"a@x.com","password":"short","fullName":"Alice A"}`,
			wantField: "password",
		},
		{
			name:      "full name too short",
			body:      `{"username":"alice","email":"a@x.com","password":"secret1","fullName":"A"}`,
			wantField: "fullName",
		},
		{
			name:      "unknown role",
			body:      `{"username":"alice","email":"a@x.com","password":"secret1","fullName":"Alice A","role":"manager"}`,
			wantField: "role",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", tc.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var body struct {
				Success bool              `json:"success"`
				Errors  map[string]string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Contains(t, body.Errors, tc.wantField)
		})
	}
}

func TestRegisterConflictEndpoint(t *testing.T) {
	r := newTestRouter(t)
	registerAlice(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"b@x.com","password":"secret1","fullName":"Alice A"}`, "")
	require.Equal(t, http.StatusConflict, w.Code)

	var res application.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, application.MsgUsernameTaken, res.Message)
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)
	registerAlice(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res application.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Token)

	bad := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, bad.Code)

	var badRes application.AuthResult
	require.NoError(t, json.Unmarshal(bad.Body.Bytes(), &badRes))
	assert.False(t, badRes.Success)
	assert.Equal(t, application.MsgInvalidCredentials, badRes.Message)
	assert.Empty(t, badRes.Token)
}

func TestMeEndpoint(t *testing.T) {
	r := newTestRouter(t)
	reg := registerAlice(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", reg.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var me map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, reg.User.ID, me["id"])
	assert.Equal(t, "alice", me["username"])
	assert.Equal(t, "a@x.com", me["email"])
	assert.Equal(t, "farmer", me["role"])
	assert.Equal(t, "Alice A", me["fullName"])
}

func TestMeRejectsBadTokens(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		name   string
		bearer string
	}{
		{name: "missing token", bearer: ""},
		{name: "garbage token", bearer: "not.a.token"},
		{
			name: "expired token",
			bearer: func() string {
				expired := helpers.NewJWTManager("testsecret", "Caxora", "CaxoraUsers", -time.Minute)
				s, _, err := expired.Issue(&entity.User{ID: "x", Username: "alice"})
				require.NoError(t, err)
				return s
			}(),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", tc.bearer)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.WithinDuration(t, time.Now(), body.Timestamp, time.Minute)
}
