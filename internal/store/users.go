package store

import (
	"context"
	"strconv"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

type Users struct {
	sess      *session
	list      Resource[[]users.User]
	customers Resource[[]users.User]
	current   Resource[users.User]
	mut       Serializer
}

func (u *Users) Snapshot() Snapshot[[]users.User]          { return u.list.Snapshot() }
func (u *Users) CustomersSnapshot() Snapshot[[]users.User] { return u.customers.Snapshot() }

func (u *Users) Fetch(ctx context.Context) ([]users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return nil, err
	}
	return u.list.Load(ctx, "all", func(ctx context.Context) ([]users.User, error) {
		list, err := u.sess.deps.API.Users(ctx, tok)
		return list, u.sess.check(err)
	})
}

func (u *Users) FetchCustomers(ctx context.Context) ([]users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return nil, err
	}
	return u.customers.Load(ctx, "customers", func(ctx context.Context) ([]users.User, error) {
		list, err := u.sess.deps.API.Customers(ctx, tok)
		return list, u.sess.check(err)
	})
}

func (u *Users) Get(ctx context.Context, id int64) (users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	return u.current.Load(ctx, "user:"+strconv.FormatInt(id, 10), func(ctx context.Context) (users.User, error) {
		usr, err := u.sess.deps.API.User(ctx, tok, id)
		return usr, u.sess.check(err)
	})
}

func (u *Users) FindByAccountNumber(ctx context.Context, accountNumber string) (users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	if _, _, err := users.ParseAccountNumber(accountNumber); err != nil {
		return users.User{}, err
	}
	return u.current.Load(ctx, "account:"+accountNumber, func(ctx context.Context) (users.User, error) {
		usr, err := u.sess.deps.API.UserByAccount(ctx, tok, accountNumber)
		return usr, u.sess.check(err)
	})
}

func (u *Users) Create(ctx context.Context, in users.Input) (users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	created, err := u.sess.deps.API.CreateUser(ctx, tok, in)
	if err != nil {
		return users.User{}, u.sess.check(err)
	}
	u.list.Update(func(list []users.User) []users.User { return append(list, created) })
	if created.Role == users.RoleCustomer {
		u.customers.Update(func(list []users.User) []users.User { return append(list, created) })
	}
	return created, nil
}

func (u *Users) Update(ctx context.Context, id int64, in users.Input) (users.User, error) {
	tok, err := u.sess.authed()
	if err != nil {
		return users.User{}, err
	}
	var out users.User
	err = u.mut.Do(ctx, "user:"+strconv.FormatInt(id, 10), func(ctx context.Context) error {
		updated, err := u.sess.deps.API.UpdateUser(ctx, tok, id, in)
		if err != nil {
			return u.sess.check(err)
		}
		if updated.ID == 0 {
			updated.ID = id
		}
		out = updated
		replace := func(list []users.User) []users.User { return replaceUser(list, updated) }
		u.list.Update(replace)
		u.customers.Update(replace)
		return nil
	})
	return out, err
}

func (u *Users) Delete(ctx context.Context, id int64) error {
	tok, err := u.sess.authed()
	if err != nil {
		return err
	}
	return u.mut.Do(ctx, "user:"+strconv.FormatInt(id, 10), func(ctx context.Context) error {
		if err := u.sess.deps.API.DeleteUser(ctx, tok, id); err != nil {
			return u.sess.check(err)
		}
		drop := func(list []users.User) []users.User {
			out := make([]users.User, 0, len(list))
			for _, x := range list {
				if x.ID != id {
					out = append(out, x)
				}
			}
			return out
		}
		u.list.Update(drop)
		u.customers.Update(drop)
		return nil
	})
}

func (u *Users) reset() {
	u.list.Reset()
	u.customers.Reset()
	u.current.Reset()
}

func replaceUser(list []users.User, x users.User) []users.User {
	out := make([]users.User, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == x.ID {
			out[i] = x
		}
	}
	return out
}
