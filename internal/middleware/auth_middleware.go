package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/db"
	"careconnect-backend-go/internal/models"
)

// Context keys populated by the auth middleware.
const (
	ctxKeyUID      = "authUID"
	ctxKeyEmail    = "authEmail"
	ctxKeyName     = "authName"
	ctxKeyIdentity = "identity"
)

// errorBody mirrors the API error shape; defined locally to avoid an
// import cycle with internal/api.
type errorBody struct {
	Error string `json:"error"`
}

// TokenVerifier is the contract against the identity service. It is
// satisfied by *auth.Client and by fakes in tests.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware verifies bearer credentials and resolves caller profiles.
type AuthMiddleware struct {
	verifier TokenVerifier
	userRepo db.UserRepository
	logger   *zap.Logger
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(verifier TokenVerifier, userRepo db.UserRepository, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, userRepo: userRepo, logger: logger}
}

// Authenticate verifies the Authorization bearer token and stores the
// token claims in the context. It does not require a stored profile; the
// profile-bootstrap endpoint runs with this middleware alone.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "authorization header format must be 'Bearer {token}'"})
			return
		}

		token, err := m.verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			// Detail stays server-side; the client gets a generic message.
			m.logger.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "invalid or expired authentication token"})
			return
		}

		c.Set(ctxKeyUID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ctxKeyEmail, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(ctxKeyName, name)
		}

		c.Next()
	}
}

// WithProfile resolves the stored profile for the verified token and
// attaches the caller's Identity. A verified token without a profile is
// still unauthenticated.
func (m *AuthMiddleware) WithProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(ctxKeyUID)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "authentication required"})
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), uid)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: "no profile exists for this account"})
				return
			}
			m.logger.Error("profile lookup failed", zap.String("uid", uid), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
			return
		}

		c.Set(ctxKeyIdentity, models.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

// IdentityFrom returns the verified caller identity set by WithProfile.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(ctxKeyIdentity)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

// TokenClaimsFrom returns the raw token claims set by Authenticate.
func TokenClaimsFrom(c *gin.Context) (uid, email, name string) {
	return c.GetString(ctxKeyUID), c.GetString(ctxKeyEmail), c.GetString(ctxKeyName)
}
