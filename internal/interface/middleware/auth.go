package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/pkg/helpers"
	"github.com/addisestates/backend/pkg/response"
)

const userKey = "auth_user"

// Auth validates the Bearer token and loads the account it belongs to.
// It sets the authenticated user and userID in the Gin context on success.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			msg := "invalid access token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				msg = "access token expired"
			}
			response.Error[any](c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		// Token validity alone is not enough; the account may have been
		// deleted since issuance.
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "account no longer exists", nil)
			c.Abort()
			return
		}

		c.Set(userKey, u)
		c.Set("userID", u.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil when the
// chain did not run Auth.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
