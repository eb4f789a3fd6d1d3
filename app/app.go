package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/seminar-booking/config"
	httpapi "github.com/jekabolt/seminar-booking/internal/api/http"
	"github.com/jekabolt/seminar-booking/internal/apisrv/admin"
	"github.com/jekabolt/seminar-booking/internal/apisrv/auth"
	"github.com/jekabolt/seminar-booking/internal/apisrv/frontend"
	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/mail"
	"github.com/jekabolt/seminar-booking/internal/ratelimit"
	"github.com/jekabolt/seminar-booking/internal/report"
	"github.com/jekabolt/seminar-booking/internal/store"
	"github.com/jekabolt/seminar-booking/internal/view"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// App is the main application
type App struct {
	hs      *httpapi.Server
	db      dependency.Repository
	mailer  dependency.Mailer
	limiter *ratelimit.MultiKeyLimiter
	c       *config.Config
	done    chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting seminar booking",
		slog.String("event", a.c.Event.Name),
	)

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to database", slog.String("err", err.Error()))
		return err
	}

	tr := i18n.NewTranslator(a.c.I18n.DefaultLocale)
	vr, err := view.New(tr)
	if err != nil {
		return fmt.Errorf("can't parse page templates: %w", err)
	}

	rep, err := report.New(a.c.Report)
	if err != nil {
		return fmt.Errorf("can't create reporter: %w", err)
	}

	a.limiter = ratelimit.NewMultiKeyLimiter(a.c.RateLimit)

	authS, err := auth.New(&a.c.Auth, a.db.Admin(), a.limiter, vr, tr)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	if a.c.Mailer.APIKey != "" {
		a.mailer, err = mail.New(&a.c.Mailer)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed create new mailer", slog.String("err", err.Error()))
			return err
		}
		if err = a.mailer.Start(ctx); err != nil {
			return fmt.Errorf("can't start mailer: %w", err)
		}
	} else {
		slog.Default().WarnContext(ctx, "sendgrid api key is not set, confirmation mails are disabled")
	}

	adminS := admin.New(a.db, rep, vr, tr, a.c.Event)
	frontendS := frontend.New(a.db, a.mailer, a.limiter, vr, tr, a.c.Event)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.hs.Handler(adminS, frontendS, authS, a.db)); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		select {
		case <-a.done:
		default:
			close(a.done)
		}
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var g errgroup.Group
	if a.hs != nil {
		g.Go(func() error { return a.hs.Stop(ctx) })
	}
	if a.mailer != nil {
		g.Go(a.mailer.Stop)
	}
	err := g.Wait()

	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	return err
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
