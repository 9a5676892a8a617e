package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/addisestates/backend/internal/domain/entity"
)

func principalRouter(u *entity.User, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{func(c *gin.Context) {
		if u != nil {
			c.Set(userKey, u)
		}
		c.Next()
	}}
	chain = append(chain, mw...)
	chain = append(chain, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/probe", chain...)
	return r
}

func get(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w.Code
}

func TestRequireRoles(t *testing.T) {
	mw := RequireRoles(entity.ListingRoles...)

	if code := get(principalRouter(&entity.User{Role: entity.RoleSeller}, mw)); code != http.StatusOK {
		t.Errorf("seller: expected 200, got %d", code)
	}
	if code := get(principalRouter(&entity.User{Role: entity.RoleAgent}, mw)); code != http.StatusOK {
		t.Errorf("agent: expected 200, got %d", code)
	}
	if code := get(principalRouter(&entity.User{Role: entity.RoleBuyer}, mw)); code != http.StatusForbidden {
		t.Errorf("buyer: expected 403, got %d", code)
	}
	if code := get(principalRouter(nil, mw)); code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", code)
	}
}

func TestRequireApproved(t *testing.T) {
	mw := RequireApproved()

	if code := get(principalRouter(&entity.User{Role: entity.RoleSeller, IsApproved: true}, mw)); code != http.StatusOK {
		t.Errorf("approved: expected 200, got %d", code)
	}
	if code := get(principalRouter(&entity.User{Role: entity.RoleSeller}, mw)); code != http.StatusForbidden {
		t.Errorf("pending: expected 403, got %d", code)
	}
	if code := get(principalRouter(nil, mw)); code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected 401, got %d", code)
	}
}
