package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
)

// RequireAuth lets the request through only with a token. The profile is
// loaded on first use after a restore.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		st, ok := CurrentStore(c)
		if !ok || !st.Auth.LoggedIn() {
			Fail(c, apperr.UnauthorizedErr("Please log in to continue."))
			return
		}
		if _, ok := st.Auth.User(); !ok {
			if _, err := st.Auth.LoadMe(c.Request.Context()); err != nil {
				Fail(c, apperr.Wrap(err))
				return
			}
		}
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Please log in to continue."))
			return
		}
		if !slices.Contains(roles, u.Role) {
			Fail(c, apperr.ForbiddenErr("You do not have access to this page."))
			return
		}
		c.Next()
	}
}

func RequireStaff() gin.HandlerFunc {
	return RequireRole(users.RoleEmployee, users.RoleManager, users.RoleAdmin)
}

func RequireManager() gin.HandlerFunc {
	return RequireRole(users.RoleManager, users.RoleAdmin)
}
