package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dayadevraha/devraha/internal/client/client"
	"github.com/dayadevraha/devraha/internal/client/config"
	"github.com/dayadevraha/devraha/internal/client/content"
	"github.com/dayadevraha/devraha/internal/client/models"
	"github.com/dayadevraha/devraha/internal/client/services"
	"github.com/dayadevraha/devraha/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type App struct {
	config  *config.Config
	store   *services.AuthStore
	catalog *content.Catalog
	locale  content.Locale
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the API client, store and catalogs from c.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	api, err := client.NewHTTPClient(c.APIBaseURL, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	catalog, err := content.NewCatalog()
	if err != nil {
		return nil, err
	}
	store := services.NewAuthStore(api, logger)
	return newApp(c, store, catalog, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, store *services.AuthStore, catalog *content.Catalog, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		store:   store,
		catalog: catalog,
		locale:  catalog.Match(c.Locale),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run restores sessions, then serves the REPL until the user exits or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	go a.watchSessions(watchCtx)

	a.restoreSessions(ctx)

	h := a.locale.Header()
	a.println(fmt.Sprintf("Welcome to %s (type 'help' for commands)", h.Brand))
	runREPL(ctx, a.commands(), a.status, a.reader, a.out)
}

// restoreSessions probes both kinds concurrently.
func (a *App) restoreSessions(ctx context.Context) {
	var wg sync.WaitGroup
	for _, kind := range models.Kinds {
		wg.Add(1)
		go func(kind models.Kind) {
			defer wg.Done()
			a.store.For(kind).CheckAuth(ctx)
		}(kind)
	}
	wg.Wait()
}

// watchSessions logs every session change the store publishes.
func (a *App) watchSessions(ctx context.Context) {
	states, cancel := a.store.Subscribe()
	defer cancel()

	prev := <-states
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			for _, kind := range models.Kinds {
				before, after := prev.Session(kind), st.Session(kind)
				if before.Authenticated != after.Authenticated || before.PendingEmail != after.PendingEmail {
					a.logger.Debug(ctx, "session changed",
						"kind", kind.String(),
						"authenticated", after.Authenticated,
						"otp_pending", after.PendingEmail != "")
				}
			}
			prev = st
		}
	}
}

// status renders the prompt's session summary.
func (a *App) status() string {
	st := a.store.Snapshot()
	var parts []string
	for _, kind := range models.Kinds {
		sess := st.Session(kind)
		switch {
		case sess.Authenticated:
			parts = append(parts, fmt.Sprintf("%s %s", sess.Subject.Email, kind))
		case sess.PendingEmail != "":
			parts = append(parts, fmt.Sprintf("%s otp pending", kind))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " | ") + ") "
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askSecret(prompt string) (string, error) {
	return getPassword(a.reader, prompt, a.out)
}

// kindArg splits an optional leading "admin" or "user" off args.
func kindArg(args []string) (models.Kind, []string) {
	if len(args) > 0 {
		if k, err := models.ParseKind(strings.ToLower(args[0])); err == nil {
			return k, args[1:]
		}
	}
	return models.KindUser, args
}

func (a *App) commands() *commandSet {
	sectionCmd := func(name string) *command {
		return &command{
			name: name,
			help: "show the " + name + " section",
			run:  func(ctx context.Context, _ []string) error { return a.showSection(name) },
		}
	}

	return newCommandSet(
		&command{name: "home", help: "show the landing section", run: func(ctx context.Context, _ []string) error { return a.showHome() }},
		sectionCmd("about"),
		sectionCmd("philosophy"),
		sectionCmd("origins"),
		sectionCmd("quotes"),
		sectionCmd("faq"),
		sectionCmd("contact"),
		&command{name: "lang", usage: "[tag]", help: "show or switch the language", run: a.lang},

		&command{name: "register", aliases: []string{"signup"}, usage: "[admin]", help: "create an account", run: a.register},
		&command{name: "login", usage: "[admin]", help: "sign in", run: a.login},
		&command{name: "otp", usage: "[admin]", help: "enter a one-time sign-in code", run: a.otp},
		&command{name: "logout", usage: "[admin]", help: "sign out", run: a.logout},
		&command{name: "whoami", help: "show who is signed in", run: a.whoami},
		&command{name: "status", help: "show session flags", run: a.showStatus},

		&command{name: "profile", usage: "[admin]", help: "reload and show the profile", run: a.profile},
		&command{name: "update", usage: "admin", help: "edit the admin profile", run: a.update},
		&command{name: "password", usage: "[admin]", help: "change the password", run: a.password},
		&command{name: "2fa", usage: "[admin]", help: "turn two-factor sign-in on or off", run: a.twoFactor},
		&command{name: "delete", usage: "[admin]", help: "delete the account", run: a.deleteAccount},

		&command{name: "verify-email", usage: "[admin] [token]", help: "redeem an email verification token", run: a.verifyEmail},
		&command{name: "resend", usage: "[admin]", help: "resend the verification email", run: a.resend},
		&command{name: "forgot", usage: "[admin]", help: "request a password reset email", run: a.forgot},
		&command{name: "reset", usage: "[admin]", help: "set a new password with a reset token", run: a.reset},
	)
}
