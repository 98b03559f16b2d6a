package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/sessioncookie"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

const (
	ctxKeyStore   = "store"
	ctxKeySession = "session"
)

type sessionRef struct {
	reg *store.Registry
	ck  *sessioncookie.Codec
}

// Session attaches the caller's Store. Without a valid cookie the request
// gets an unregistered store; it becomes a session only through
// KeepSession, so visitors and probes leave nothing behind.
func Session(reg *store.Registry, ck *sessioncookie.Codec) gin.HandlerFunc {
	ref := sessionRef{reg: reg, ck: ck}
	return func(c *gin.Context) {
		var st *store.Store
		if id, ok := ck.Get(c); ok {
			st, _ = reg.Get(id)
		}
		if st == nil {
			st = reg.Anonymous()
		}
		c.Set(ctxKeyStore, st)
		c.Set(ctxKeySession, ref)
		c.Next()
	}
}

// KeepSession registers the request's store and issues its cookie.
func KeepSession(c *gin.Context) {
	st, ok := CurrentStore(c)
	ref, refOK := c.Value(ctxKeySession).(sessionRef)
	if !ok || !refOK {
		return
	}
	ref.reg.Register(st)
	ref.ck.Set(c, st.ID)
}

// EndSession forgets the request's store and clears the cookie.
func EndSession(c *gin.Context) {
	st, ok := CurrentStore(c)
	ref, refOK := c.Value(ctxKeySession).(sessionRef)
	if !ok || !refOK {
		return
	}
	ref.reg.Delete(st.ID)
	ref.ck.Clear(c)
}

func CurrentStore(c *gin.Context) (*store.Store, bool) {
	v, ok := c.Get(ctxKeyStore)
	if !ok {
		return nil, false
	}
	st, ok := v.(*store.Store)
	return st, ok && st != nil
}

// CurrentUser returns the signed-in user, if the store has one.
func CurrentUser(c *gin.Context) (users.User, bool) {
	st, ok := CurrentStore(c)
	if !ok || !st.Auth.LoggedIn() {
		return users.User{}, false
	}
	return st.Auth.User()
}
