package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jekabolt/seminar-booking/internal/apisrv/admin"
	"github.com/jekabolt/seminar-booking/internal/apisrv/auth"
	"github.com/jekabolt/seminar-booking/internal/apisrv/frontend"
	"github.com/jekabolt/seminar-booking/internal/middleware"
	"github.com/jekabolt/seminar-booking/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	TrustProxy     bool          `mapstructure:"trust_proxy"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the router serving pages and the JSON API.
func (s *Server) Handler(
	adminServer *admin.Server,
	frontendServer *frontend.Server,
	authServer *auth.Server,
	db Pinger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.ClientIdentifier(s.c.TrustProxy))
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(chimw.Recoverer)
	if s.c.RequestTimeout > 0 {
		r.Use(chimw.Timeout(s.c.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			slog.Default().ErrorContext(r.Context(), "health check failed",
				slog.String("err", err.Error()),
			)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	// pages
	r.Group(func(r chi.Router) {
		r.Use(authServer.WithSession)
		r.Get("/", frontendServer.BookingPage)
		r.Post("/", frontendServer.SubmitBooking)
		r.Get("/login", authServer.LoginPage)
		r.Post("/login", authServer.Login)
		r.Post("/logout", authServer.Logout)
		r.Get("/admin", adminServer.AdminPage)
		r.Get("/admin/report.pdf", adminServer.ReportPDF)
	})

	// json api
	r.Route("/api", func(r chi.Router) {
		r.Use(s.cors())
		r.Route("/admin", func(r chi.Router) {
			r.Use(authServer.WithAuth)
			r.Get("/bookings", adminServer.ListBookings)
			r.Get("/report", adminServer.ReportPDF)
		})
		r.Post("/frontend/bookings", frontendServer.CreateBookings)
		r.Post("/auth/login", authServer.LoginAPI)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, h http.Handler) error {
	listenerAddr := net.JoinHostPort(s.c.Address, s.c.Port)
	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", listenerAddr, err)
	}

	s.hs = &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, fmt.Sprintf("seminar-booking new listener on: http://%v", ln.Addr()))
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
			return
		}
		slog.Default().ErrorContext(ctx, "http server exited with an error",
			slog.String("err", err.Error()),
		)
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

// cors allows configured origins, plus localhost, to call the JSON API.
func (s *Server) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
