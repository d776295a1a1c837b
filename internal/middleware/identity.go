package middleware

import (
	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Identity carries the caller resolved by the upstream gateway.
// Authentication happens there; this service only trusts the forwarded
// headers, which the gateway strips from external traffic.
type Identity struct {
	UserID uint
	Role   model.UserRole
}

const identityKey = "identity"

// RequireIdentity rejects requests that arrive without the gateway's
// X-User-ID header.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := util.ParseUintOrZero(c.GetHeader("X-User-ID"))
		if userID == 0 {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		role := model.UserRole(c.GetHeader("X-User-Role"))
		switch role {
		case model.Student, model.Teacher, model.Admin:
		default:
			role = model.Student
		}

		c.Set(identityKey, Identity{UserID: userID, Role: role})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Admins always pass.
func RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if id.Role == model.Admin {
			c.Next()
			return
		}
		for _, role := range roles {
			if id.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

func GetIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// IsPrivileged reports whether the caller may use teacher override on
// gated content.
func IsPrivileged(id Identity) bool {
	return id.Role == model.Teacher || id.Role == model.Admin
}
