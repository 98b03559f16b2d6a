// Package store keeps the client-side state of one user session: one slice
// per backend resource, each with an explicit load lifecycle.
package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/apiclient"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

const DefaultCartRetryDelay = time.Second

type Deps struct {
	API            Backend
	Audit          Auditor // optional
	Log            *slog.Logger
	CartRetryDelay time.Duration
	Now            func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.CartRetryDelay <= 0 {
		d.CartRetryDelay = DefaultCartRetryDelay
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// session is the state every slice of one Store shares: the bearer token
// and the signed-in user.
type session struct {
	deps Deps
	log  *slog.Logger

	mu    sync.RWMutex
	token string
	me    Resource[users.User]

	// onExpire drops the private slices when the backend rejects the token.
	onExpire func()
}

func (s *session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *session) setToken(t string) {
	s.mu.Lock()
	s.token = t
	s.mu.Unlock()
}

// authed returns the token or ErrNotLoggedIn.
func (s *session) authed() (string, error) {
	t := s.Token()
	if t == "" {
		return "", ErrNotLoggedIn
	}
	return t, nil
}

type Store struct {
	ID string

	Auth           *Auth
	Cart           *Cart
	Orders         *Orders
	EmployeeOrders *EmployeeOrders
	Users          *Users
	Books          *Collection[books.Book, books.Input]
	Categories     *Collection[books.Category, books.CategoryInput]
	Publishers     *Collection[books.Publisher, books.PublisherInput]

	sess     *session
	lastSeen atomic.Int64
}

func New(id string, deps Deps) *Store {
	deps = deps.withDefaults()
	sess := &session{deps: deps, log: deps.Log.With(slog.String("session", shortID(id)))}

	st := &Store{ID: id, sess: sess}
	st.Auth = &Auth{sess: sess}
	st.Orders = newOrders(sess)
	st.EmployeeOrders = newEmployeeOrders(sess)
	st.Cart = &Cart{sess: sess, orders: st.Orders}
	st.Users = &Users{sess: sess}
	st.Books = newBooks(sess)
	st.Categories = newCategories(sess)
	st.Publishers = newPublishers(sess)
	st.Auth.onLogout = st.resetPrivate
	sess.onExpire = st.resetPrivate
	st.Touch()
	return st
}

func (st *Store) Touch() { st.lastSeen.Store(st.sess.deps.Now().UnixNano()) }

func (st *Store) LastSeen() time.Time { return time.Unix(0, st.lastSeen.Load()) }

// resetPrivate drops everything tied to the previous user. The public
// catalog survives a logout.
func (st *Store) resetPrivate() {
	st.Cart.res.Reset()
	st.Orders.reset()
	st.EmployeeOrders.reset()
	st.Users.reset()
}

// check signs the session out when the backend rejects the token. Nothing
// the previous user loaded or staged survives it.
func (s *session) check(err error) error {
	if err != nil && apiclient.IsUnauthorized(err) {
		s.log.Info("token rejected by backend, signing out")
		s.setToken("")
		s.me.Reset()
		if s.onExpire != nil {
			s.onExpire()
		}
	}
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// detached keeps follow-up writes alive after the request that triggered
// them returns.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
