package middleware

import (
	"fmt"
	"net/http"

	"agrirent/internal/entity"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route on the caller's active role and, once the
// role matches, on the completeness of that same profile. The ordering
// matters: downstream handlers rely on "role-gated route implies a
// complete profile".
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, "Authentication required.")
			return
		}

		if user.ActiveRole != role {
			c.JSON(http.StatusForbidden, gin.H{
				"success":       false,
				"message":       fmt.Sprintf("Access denied. %s role required.", role),
				"required_role": role.String(),
				"current_role":  user.ActiveRole.String(),
				"can_switch":    user.CanSwitchTo(role),
			})
			c.Abort()
			return
		}

		// Active role equals the required role here, so this checks the
		// profile just matched.
		if profile, exists := user.ActiveProfile(); exists && !profile.IsComplete() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":            false,
				"message":            fmt.Sprintf("Please complete your %s profile to access this feature.", role),
				"profile_incomplete": true,
				"profile_type":       role.String(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
