package rmiddleware

import (
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
	"github.com/gin-gonic/gin"
)

// SuperuserMiddleware only lets superusers through. It must run after
// middleware.AuthMiddleware, which loads the current user.
func SuperuserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetCurrentUser(c)
		if !ok {
			responses.Unauthorized(c, "User not authenticated")
			return
		}
		if !user.IsSuperuser {
			responses.Forbidden(c, "Superuser privileges required")
			return
		}
		c.Next()
	}
}
