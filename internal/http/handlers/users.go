package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

type UsersHandler struct{}

func NewUsersHandler() *UsersHandler { return &UsersHandler{} }

// Customers handles GET /api/staff/customers; ?account=CU-1001 looks up one
// account instead of listing.
func (h *UsersHandler) Customers(c *gin.Context) {
	st := mustStore(c)
	if acc := strings.TrimSpace(c.Query("account")); acc != "" {
		u, err := st.Users.FindByAccountNumber(c.Request.Context(), acc)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": []users.User{u}})
		return
	}
	list, err := st.Users.FetchCustomers(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Users.CustomersSnapshot(), func(list []users.User) gin.H {
			return gin.H{"customers": nonNil(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": nonNil(list)})
}

func (h *UsersHandler) List(c *gin.Context) {
	st := mustStore(c)
	list, err := st.Users.Fetch(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Users.Snapshot(), func(list []users.User) gin.H {
			return gin.H{"users": nonNil(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": nonNil(list)})
}

func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := mustStore(c).Users.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UsersHandler) Create(c *gin.Context) {
	var in users.Input
	if !bindJSON(c, &in) {
		return
	}
	u, err := mustStore(c).Users.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "toast": view.Success("User " + u.AccountNumber + " created.")})
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in users.Input
	if !bindJSON(c, &in) {
		return
	}
	u, err := mustStore(c).Users.Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "toast": view.Success("User updated.")})
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := mustStore(c).Users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"toast": view.Info("User deleted.")})
}
