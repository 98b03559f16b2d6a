// Command pahana is a terminal client for the bookstore backend: sign in,
// list orders and export or e-mail invoices.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/apiclient"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/config"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/localstore"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/mailer"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/invoice"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/storage"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

const usage = `usage: pahana <command> [flags]

commands:
  login    -email E [-password P]   sign in and remember the token
  logout                            forget the token
  whoami                            show the signed-in account
  orders   [-all] [-channel C]      list your orders, or every order (staff)
  invoice  -id N [-all] [-channel C] [-out DIR] [-email]
                                    export (and optionally e-mail) an invoice
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg   *config.Config
	out   io.Writer
	state *localstore.Store
	st    *store.Store
	log   *slog.Logger
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := os.Getenv("PAHANA_STATE")
	if path == "" {
		if path, err = localstore.DefaultPath(); err != nil {
			return err
		}
	}
	state, err := localstore.Open(path)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	api := apiclient.New(apiclient.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout, UserAgent: "pahanaedu-cli"}, log)
	a := &app{
		cfg:   cfg,
		out:   out,
		state: state,
		st:    store.New("cli", store.Deps{API: api, Log: log, CartRetryDelay: cfg.Cart.RetryDelay}),
		log:   log,
	}
	if tok, ok := state.Get(localstore.TokenKey); ok {
		a.st.Auth.Restore(tok)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		err = a.login(ctx, rest)
	case "logout":
		err = a.logout()
	case "whoami":
		err = a.whoami(ctx)
	case "orders":
		err = a.orders(ctx, rest)
	case "invoice":
		err = a.invoice(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return a.finish(err)
}

// finish drops a token the backend rejected so the next run starts clean.
func (a *app) finish(err error) error {
	if _, had := a.state.Get(localstore.TokenKey); had && !a.st.Auth.LoggedIn() {
		if rmErr := a.state.Remove(localstore.TokenKey); rmErr != nil {
			return errors.Join(err, rmErr)
		}
	}
	if err != nil && apiclient.IsUnauthorized(err) {
		return fmt.Errorf("%w (run `pahana login` again)", err)
	}
	return err
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Account e-mail")
	password := fs.String("password", os.Getenv("PAHANA_PASSWORD"), "Password (or PAHANA_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required")
	}

	u, err := a.st.Auth.Login(ctx, users.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	if err := a.state.Set(localstore.TokenKey, a.st.Auth.Token()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s, %s)\n", u.Name, u.AccountNumber, u.Role)
	return nil
}

func (a *app) logout() error {
	a.st.Auth.Logout()
	if err := a.state.Remove(localstore.TokenKey); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	u, err := a.st.Auth.LoadMe(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> %s %s\n", u.Name, u.Email, u.AccountNumber, u.Role)
	return nil
}

type orderSource struct {
	all     bool
	channel string
}

func (s *orderSource) bind(fs *flag.FlagSet) {
	fs.BoolVar(&s.all, "all", false, "Staff: every order instead of your own")
	fs.StringVar(&s.channel, "channel", string(orders.ChannelOnline), "Staff: ONLINE or IN_STORE")
}

func (s orderSource) inStore() bool {
	return strings.EqualFold(s.channel, string(orders.ChannelInStore))
}

func (a *app) orders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	var src orderSource
	src.bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		list []orders.Order
		err  error
	)
	switch {
	case !src.all:
		list, err = a.st.Orders.FetchMine(ctx)
	case src.inStore():
		list, err = a.st.EmployeeOrders.FetchAll(ctx)
	default:
		list, err = a.st.Orders.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No orders.")
		return nil
	}
	for _, o := range view.NewOrderList(list) {
		fmt.Fprintf(a.out, "%-6d %-20s %-12s %-10s %s\n", o.ID, o.Number, o.OrderStatus.Label, o.PaymentStatus.Label, o.Total)
	}
	return nil
}

func (a *app) invoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice", flag.ContinueOnError)
	id := fs.Int64("id", 0, "Order id")
	dir := fs.String("out", "", "Write into this directory instead of the configured storage")
	email := fs.Bool("email", false, "Also e-mail the invoice to the customer")
	var src orderSource
	src.bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	var (
		o   orders.Order
		err error
	)
	if src.all && src.inStore() {
		o, err = a.st.EmployeeOrders.FetchByID(ctx, *id)
	} else {
		o, err = a.st.Orders.FetchByID(ctx, *id)
	}
	if err != nil {
		return err
	}

	var customer *users.User
	if !src.all {
		if u, err := a.st.Auth.LoadMe(ctx); err == nil {
			customer = &u
		}
	}

	sink, err := a.storage(ctx, *dir)
	if err != nil {
		return err
	}
	res, err := invoice.NewExporter(sink).Export(ctx, o, customer)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes) to %s\n", res.FileName, res.Size, res.URL)

	if !*email {
		return nil
	}
	if !a.cfg.MailEnabled() {
		return errors.New("no mail transport configured (SMTP_HOST or MAILTRAP_API_URL)")
	}
	m := &invoice.Mailer{Service: mailer.New(a.cfg.SMTP, a.cfg.Mail, a.log), From: a.cfg.Mail.From, FromName: a.cfg.Mail.FromName}
	to, err := m.Send(ctx, o, customer)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sent to %s\n", to)
	return nil
}

func (a *app) storage(ctx context.Context, dir string) (storage.Storage, error) {
	if dir != "" {
		return storage.NewLocal(dir, dir), nil
	}
	res, err := storage.New(ctx, a.cfg.Storage)
	if err != nil {
		return nil, err
	}
	return res.Storage, nil
}
