package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.err
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func newTestRouter(mw *AuthMiddleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{mw.Authenticate(), mw.WithProfile()}, handlers...)
	router.GET("/protected", chain...)
	return router
}

func okHandler(c *gin.Context) {
	identity, _ := IdentityFrom(c)
	c.JSON(http.StatusOK, identity)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{}, &fakeUserRepo{}, zap.NewNop())
	router := newTestRouter(mw, okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{}, &fakeUserRepo{}, zap.NewNop())
	router := newTestRouter(mw, okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(&fakeVerifier{err: errors.New("expired")}, &fakeUserRepo{}, zap.NewNop())
	router := newTestRouter(mw, okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// The generic body never echoes verifier detail.
	assert.NotContains(t, w.Body.String(), "expired")
}

func TestWithProfile_NoProfile(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{UID: "u1", Claims: map[string]interface{}{}}}
	mw := NewAuthMiddleware(verifier, &fakeUserRepo{users: map[string]*models.User{}}, zap.NewNop())
	router := newTestRouter(mw, okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithProfile_ValidTokenAndProfile(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{
		UID:    "u1",
		Claims: map[string]interface{}{"email": "admin@example.com"},
	}}
	repo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin},
	}}
	mw := NewAuthMiddleware(verifier, repo, zap.NewNop())
	router := newTestRouter(mw, okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
	assert.Contains(t, w.Body.String(), string(models.RoleAdmin))
}
