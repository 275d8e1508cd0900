package middleware

import (
	"crypto/subtle"
	"net/http"

	"shootbook/internal/handler/httperr"
	"shootbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth gates the ops surface behind the single administrator
// identity. There is no user login flow; the shared token stands in for
// the admin's chat identity.
type AdminAuth struct {
	token string
}

func NewAdminAuth(cfg config.Config) *AdminAuth {
	return &AdminAuth{token: cfg.Bot.AdminToken}
}

func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(adminTokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(m.token)) != 1 {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Admin token required", nil)
			return
		}
		c.Next()
	}
}
