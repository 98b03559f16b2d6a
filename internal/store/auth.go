package store

import (
	"context"
	"log/slog"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

type Auth struct {
	sess     *session
	onLogout func()
}

func (a *Auth) Token() string { return a.sess.Token() }

// Restore adopts a token obtained earlier, e.g. from the CLI's local store.
func (a *Auth) Restore(token string) {
	a.sess.setToken(token)
	a.sess.me.Reset()
}

func (a *Auth) LoggedIn() bool { return a.sess.Token() != "" }

// User returns the signed-in user once it has been loaded.
func (a *Auth) User() (users.User, bool) {
	if !a.LoggedIn() {
		return users.User{}, false
	}
	return a.sess.me.Get()
}

func (a *Auth) Role() users.Role {
	u, ok := a.User()
	if !ok {
		return ""
	}
	return u.Role
}

func (a *Auth) Login(ctx context.Context, in users.Credentials) (users.User, error) {
	res, err := a.sess.deps.API.Login(ctx, in)
	if err != nil {
		a.sess.me.Fail(err)
		return users.User{}, err
	}
	if a.onLogout != nil {
		a.onLogout()
	}
	a.sess.setToken(res.Token)

	if res.User != nil && res.User.Role != "" {
		a.sess.me.Set(*res.User)
		a.sess.log.Info("login", slog.String("account", res.User.AccountNumber), slog.String("role", string(res.User.Role)))
		return *res.User, nil
	}
	// older backends return only the token
	return a.LoadMe(ctx)
}

// Register creates a customer account. When the backend hands back a token
// the session is signed in right away.
func (a *Auth) Register(ctx context.Context, in users.Registration) (users.User, bool, error) {
	res, err := a.sess.deps.API.Register(ctx, in)
	if err != nil {
		return users.User{}, false, err
	}
	var u users.User
	if res.User != nil {
		u = *res.User
	}
	if res.Token == "" {
		return u, false, nil
	}
	a.sess.setToken(res.Token)
	if u.Role == "" {
		me, err := a.LoadMe(ctx)
		if err != nil {
			return u, true, err
		}
		return me, true, nil
	}
	a.sess.me.Set(u)
	return u, true, nil
}

func (a *Auth) LoadMe(ctx context.Context) (users.User, error) {
	tok, err := a.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	return a.sess.me.Load(ctx, "me", func(ctx context.Context) (users.User, error) {
		u, err := a.sess.deps.API.Me(ctx, tok)
		return u, a.sess.check(err)
	})
}

func (a *Auth) Logout() {
	a.sess.setToken("")
	a.sess.me.Reset()
	if a.onLogout != nil {
		a.onLogout()
	}
}
