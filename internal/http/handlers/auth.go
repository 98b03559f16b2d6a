package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/middleware"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler { return &AuthHandler{} }

type authResponse struct {
	User     *users.User `json:"user"`
	LoggedIn bool        `json:"loggedIn"`
	Toast    *view.Toast `json:"toast,omitempty"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in users.Credentials
	if !bindJSON(c, &in) {
		return
	}
	u, err := mustStore(c).Auth.Login(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	middleware.KeepSession(c)
	c.JSON(http.StatusOK, authResponse{User: &u, LoggedIn: true, Toast: view.Success("Welcome back, " + u.Name + ".")})
}

// Register handles POST /api/auth/register. The backend may or may not sign
// the new customer in straight away.
func (h *AuthHandler) Register(c *gin.Context) {
	var in users.Registration
	if !bindJSON(c, &in) {
		return
	}
	u, loggedIn, err := mustStore(c).Auth.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	toast := view.Success("Account created. You can log in now.")
	if loggedIn {
		middleware.KeepSession(c)
		toast = view.Success("Account created. Welcome, " + u.Name + ".")
	}
	c.JSON(http.StatusCreated, authResponse{User: &u, LoggedIn: loggedIn, Toast: toast})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	mustStore(c).Auth.Logout()
	middleware.EndSession(c)
	c.JSON(http.StatusOK, authResponse{Toast: view.Info("You have been logged out.")})
}

// Me reports the current user, loading the profile when only a token is
// known.
func (h *AuthHandler) Me(c *gin.Context) {
	st := mustStore(c)
	if !st.Auth.LoggedIn() {
		c.JSON(http.StatusOK, authResponse{})
		return
	}
	u, ok := st.Auth.User()
	if !ok {
		var err error
		if u, err = st.Auth.LoadMe(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, authResponse{User: &u, LoggedIn: true})
}
