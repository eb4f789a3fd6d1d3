package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/seminar-booking/internal/dependency/mocks"
	"github.com/jekabolt/seminar-booking/internal/dto"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/ratelimit"
	"github.com/jekabolt/seminar-booking/internal/session"
	"github.com/jekabolt/seminar-booking/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret = "hehe"

	email       = "Admin@Example.com"
	password    = "testPassword"
	newPassword = "newPassword"
)

func newServer(t *testing.T, as *mocks.Admin, lc ratelimit.Config) *Server {
	tr := i18n.NewTranslator("en")
	vr, err := view.New(tr)
	require.NoError(t, err)
	limiter := ratelimit.NewMultiKeyLimiter(lc)
	t.Cleanup(limiter.Close)

	s, err := New(&Config{
		JWTSecret:                jwtSecret,
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "60m",
	}, as, limiter, vr, tr)
	require.NoError(t, err)
	return s
}

func TestNewBadConfig(t *testing.T) {
	as := mocks.NewAdmin(t)
	_, err := New(&Config{JWTSecret: "x", PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "soon"}, as, nil, nil, nil)
	assert.Error(t, err)
	_, err = New(&Config{PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "1h"}, as, nil, nil, nil)
	assert.Error(t, err)
}

func TestAuth(t *testing.T) {
	ctx := context.Background()
	as := mocks.NewAdmin(t)
	authsrv := newServer(t, as, ratelimit.Config{})

	var stored string
	as.EXPECT().AddAdmin(ctx, "admin@example.com", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, hash string) error {
			stored = hash
			return nil
		}).Once()
	require.NoError(t, authsrv.CreateAdmin(ctx, email, password))
	assert.NoError(t, authsrv.pwhash.Validate(password, stored))

	assert.Error(t, authsrv.CreateAdmin(ctx, "not-an-email", password))
	assert.Error(t, authsrv.CreateAdmin(ctx, email, "short"))

	as.EXPECT().ChangePassword(ctx, "admin@example.com", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, hash string) error {
			stored = hash
			return nil
		}).Once()
	require.NoError(t, authsrv.ChangePassword(ctx, email, newPassword))

	as.EXPECT().PasswordHashByEmail(ctx, "admin@example.com").
		RunAndReturn(func(context.Context, string) (string, error) { return stored, nil })

	_, _, err := authsrv.SignIn(ctx, email, password)
	assert.ErrorIs(t, err, gerr.ErrInvalidCredentials)

	token, exp, err := authsrv.SignIn(ctx, email, newPassword)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	handlerAuth := authsrv.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(sess.Subject))
	}))

	req := httptest.NewRequest(http.MethodGet, "http://testing", nil)
	req.Header.Set(AuthHeader, fmt.Sprintf("Bearer %s", token))
	rec := httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", rec.Body.String())

	req.Header.Set(AuthHeader, "Bearer bad token")
	rec = httptest.NewRecorder()
	handlerAuth.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	as.EXPECT().DeleteAdmin(ctx, "admin@example.com").Return(nil).Once()
	assert.NoError(t, authsrv.DeleteAdmin(ctx, email))
}

func TestSignInUnknownAdmin(t *testing.T) {
	ctx := context.Background()
	as := mocks.NewAdmin(t)
	authsrv := newServer(t, as, ratelimit.Config{})

	as.EXPECT().PasswordHashByEmail(ctx, "ghost@example.com").Return("", gerr.ErrAdminNotFound).Once()
	_, _, err := authsrv.SignIn(ctx, "ghost@example.com", password)
	assert.ErrorIs(t, err, gerr.ErrInvalidCredentials)

	as.EXPECT().PasswordHashByEmail(ctx, "down@example.com").Return("", fmt.Errorf("connection refused")).Once()
	_, _, err = authsrv.SignIn(ctx, "down@example.com", password)
	assert.ErrorIs(t, err, gerr.ErrInvalidCredentials)
}

func postForm(h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestLoginFlow(t *testing.T) {
	as := mocks.NewAdmin(t)
	authsrv := newServer(t, as, ratelimit.Config{})
	hash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)
	as.EXPECT().PasswordHashByEmail(mock.Anything, "admin@example.com").Return(hash, nil)

	rec := postForm(authsrv.Login, "/login", url.Values{"email": {email}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid login credentials")
	assert.Empty(t, rec.Result().Cookies())

	rec = postForm(authsrv.Login, "/login", url.Values{"email": {email}, "password": {password}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, AdminPath, rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// the cookie authenticates following requests
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookies[0])
	sess := authsrv.Current(req)
	require.NotNil(t, sess)
	assert.Equal(t, "admin@example.com", sess.Subject)

	rec = httptest.NewRecorder()
	authsrv.LoginPage(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	authsrv.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin Login")

	rec = postForm(authsrv.Logout, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginPath, rec.Header().Get("Location"))
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLoginRateLimited(t *testing.T) {
	as := mocks.NewAdmin(t)
	authsrv := newServer(t, as, ratelimit.Config{LoginsPerMinute: 1})
	as.EXPECT().PasswordHashByEmail(mock.Anything, mock.Anything).Return("", gerr.ErrAdminNotFound).Once()

	form := url.Values{"email": {email}, "password": {password}}
	assert.Equal(t, http.StatusUnauthorized, postForm(authsrv.Login, "/login", form).Code)
	rec := postForm(authsrv.Login, "/login", form)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many attempts")
}

func TestLoginAPI(t *testing.T) {
	as := mocks.NewAdmin(t)
	authsrv := newServer(t, as, ratelimit.Config{})
	hash, err := authsrv.pwhash.HashPassword(password)
	require.NoError(t, err)
	as.EXPECT().PasswordHashByEmail(mock.Anything, "admin@example.com").Return(hash, nil)

	call := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		authsrv.LoginAPI(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body)))
		return rec
	}

	rec := call(`{"email":"admin@example.com","password":"testPassword"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AuthToken)

	rec = call(`{"email":"admin@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid login credentials"}`, rec.Body.String())

	rec = call(`not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
