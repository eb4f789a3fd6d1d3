package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	v "github.com/asaskevich/govalidator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jekabolt/seminar-booking/internal/apisrv/respond"
	"github.com/jekabolt/seminar-booking/internal/auth/jwt"
	"github.com/jekabolt/seminar-booking/internal/auth/pwhash"
	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/dto"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/middleware"
	"github.com/jekabolt/seminar-booking/internal/ratelimit"
	"github.com/jekabolt/seminar-booking/internal/session"
	"github.com/jekabolt/seminar-booking/internal/view"
)

const (
	// AuthHeader carries "Bearer <token>" for API clients.
	AuthHeader = "Authorization"

	AdminPath = "/admin"

	minPasswordLen = 8
)

// Server exchanges admin credentials for session tokens.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	c               *Config
	limiter         *ratelimit.MultiKeyLimiter
	view            *view.Renderer
	tr              *i18n.Translator
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
	CookieName               string `mapstructure:"cookie_name"`
	CookieSecure             bool   `mapstructure:"cookie_secure"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin, l *ratelimit.MultiKeyLimiter, vr *view.Renderer, tr *i18n.Translator) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("bad jwt ttl: %w", err)
	}
	if c.CookieName == "" {
		c.CookieName = "session"
	}
	return &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:          ttl,
		c:               c,
		limiter:         l,
		view:            vr,
		tr:              tr,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn validates the credentials and returns a signed session token.
// Every failure is reported as gerr.ErrInvalidCredentials.
func (s *Server) SignIn(ctx context.Context, email, password string) (string, time.Time, error) {
	email = normalizeEmail(email)

	pwHash, err := s.adminRepository.PasswordHashByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gerr.ErrAdminNotFound) {
			slog.Default().ErrorContext(ctx, "can't get password hash",
				slog.String("err", err.Error()),
			)
		}
		return "", time.Time{}, gerr.ErrInvalidCredentials
	}
	if err := s.pwhash.Validate(password, pwHash); err != nil {
		return "", time.Time{}, gerr.ErrInvalidCredentials
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, email)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't issue token",
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, gerr.ErrInvalidCredentials
	}
	return token, time.Now().Add(s.jwtTTL), nil
}

func (s *Server) checkPassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// CreateAdmin stores a new admin credential.
func (s *Server) CreateAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if !v.IsEmail(email) {
		return fmt.Errorf("invalid email %q", email)
	}
	if err := s.checkPassword(password); err != nil {
		return err
	}
	pwHash, err := s.pwhash.HashPassword(password)
	if err != nil {
		return err
	}
	return s.adminRepository.AddAdmin(ctx, email, pwHash)
}

// DeleteAdmin removes an admin credential.
func (s *Server) DeleteAdmin(ctx context.Context, email string) error {
	return s.adminRepository.DeleteAdmin(ctx, normalizeEmail(email))
}

// ChangePassword replaces the password of an existing admin.
func (s *Server) ChangePassword(ctx context.Context, email, newPassword string) error {
	if err := s.checkPassword(newPassword); err != nil {
		return err
	}
	pwHash, err := s.pwhash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.adminRepository.ChangePassword(ctx, normalizeEmail(email), pwHash)
}

func (s *Server) token(r *http.Request) string {
	if h := r.Header.Get(AuthHeader); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(s.c.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// Current returns the session presented by the request, or nil.
func (s *Server) Current(r *http.Request) *session.Session {
	token := s.token(r)
	if token == "" {
		return nil
	}
	sub, exp, err := jwt.VerifyToken(s.JwtAuth, token)
	if err != nil {
		return nil
	}
	return &session.Session{Subject: sub, ExpiresAt: exp}
}

// WithSession stores the request's session, if any, in its context.
func (s *Server) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := s.Current(r); sess != nil {
			r = r.WithContext(session.NewContext(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// WithAuth middleware rejects API requests without an active session.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Current(r)
		if !sess.Active(time.Now()) {
			respond.Error(w, r, http.StatusUnauthorized, "not authenticated")
			return
		}
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, status int, email, noticeKey string) {
	locale := s.tr.LocaleFromRequest(r)
	p := view.Page{
		Locale: locale,
		Title:  s.tr.T(locale, i18n.MsgAdminLogin, nil),
		Data:   view.LoginData{Email: email},
	}
	if noticeKey != "" {
		p.Notice = view.Error(s.tr.T(locale, noticeKey, nil))
	}
	s.view.Render(w, r, status, view.PageLogin, p)
}

// LoginPage renders the credential form, or skips to the admin view when
// a session is already active.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s.Current(r).Active(time.Now()) {
		http.Redirect(w, r, AdminPath, http.StatusSeeOther)
		return
	}
	s.renderLogin(w, r, http.StatusOK, "", "")
}

// Login handles the credential form post.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderLogin(w, r, http.StatusBadRequest, "", i18n.MsgInvalidCredentials)
		return
	}
	email := r.PostForm.Get("email")
	password := r.PostForm.Get("password")

	if err := s.limiter.CheckLogin(middleware.GetClientIP(r.Context()), email); err != nil {
		slog.Default().WarnContext(r.Context(), "login rate limited",
			slog.String("err", err.Error()),
		)
		s.renderLogin(w, r, http.StatusTooManyRequests, email, i18n.MsgTooManyRequests)
		return
	}

	token, exp, err := s.SignIn(r.Context(), email, password)
	if err != nil {
		s.renderLogin(w, r, http.StatusUnauthorized, email, i18n.MsgInvalidCredentials)
		return
	}
	s.limiter.LoginSucceeded(email)

	http.SetCookie(w, &http.Cookie{
		Name:     s.c.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   s.c.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, AdminPath, http.StatusSeeOther)
}

// Logout clears the session cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.c.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.c.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

// LoginAPI exchanges JSON credentials for a bearer token.
func (s *Server) LoginAPI(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, gerr.ErrInvalidCredentials.Error())
		return
	}
	if err := s.limiter.CheckLogin(middleware.GetClientIP(r.Context()), req.Email); err != nil {
		respond.Error(w, r, http.StatusTooManyRequests, gerr.ErrTooManyRequests.Error())
		return
	}
	token, exp, err := s.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, http.StatusUnauthorized, gerr.ErrInvalidCredentials.Error())
		return
	}
	s.limiter.LoginSucceeded(req.Email)
	respond.JSON(w, r, http.StatusOK, dto.LoginResponse{AuthToken: token, ExpiresAt: exp})
}
