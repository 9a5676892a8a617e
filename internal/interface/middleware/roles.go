package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/pkg/response"
)

// RequireRoles stops the chain unless the authenticated user holds one of
// the given roles. It must run after Auth.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		if _, ok := allowed[u.Role]; !ok {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireApproved gates listing operations until an admin approves the
// account. Buyers and admins are approved at registration, so this only
// ever blocks seller, landlord and agent accounts awaiting review.
func RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		if !u.IsApproved {
			response.Error[any](c, http.StatusForbidden, "account pending admin approval", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
