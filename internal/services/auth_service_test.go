package services

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	to, subject, body string
	err               error
}

func (s *recordingSender) Send(_ context.Context, to, subject, body string) error {
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

func newAuthService(users *fakeUsers) (*AuthService, *auth.TokenManager, *recordingSender) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	sender := &recordingSender{}
	svc := NewAuthService(users, fakeRoles{}, auth.NewHasher(4), tm, sender, "http://frontend.test/reset-password")
	return svc, tm, sender
}

func TestRegister(t *testing.T) {
	users := newFakeUsers()
	svc, _, _ := newAuthService(users)

	err := svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2)
	require.NoError(t, err)

	u, err := users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, int64(2), u.RoleID)
	// stored value is a digest, never the plaintext
	assert.NotEqual(t, "Password1", u.PasswordHash)
	assert.True(t, auth.NewHasher(4).Verify("Password1", u.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc, _, _ := newAuthService(users)

	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))
	err := svc.Register(context.Background(), "alice2", "a@x.com", "Password1", 2)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.users, 1)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	err := svc.Register(context.Background(), "alice", "a@x.com", "Password1", 99)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	err := svc.Register(context.Background(), "alice", "a@x.com", "alllowercase1", 2)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterBadEmail(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	err := svc.Register(context.Background(), "alice", "not-an-email", "Password1", 2)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	svc, tm, _ := newAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))

	token, u, err := svc.Login(context.Background(), "a@x.com", "Password1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, int64(2), claims.RoleID)
	assert.Equal(t, auth.TokenTypeAccess, claims.Type)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))

	_, _, err := svc.Login(context.Background(), "a@x.com", "Password2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	_, _, err := svc.Login(context.Background(), "nobody@x.com", "Password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	users := newFakeUsers()
	svc, tm, sender := newAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))
	u, _ := users.GetByEmail(context.Background(), "a@x.com")

	require.NoError(t, svc.ForgotPassword(context.Background(), "a@x.com"))

	assert.Equal(t, "a@x.com", sender.to)
	assert.Equal(t, "Password Reset Request", sender.subject)
	assert.Contains(t, sender.body, "http://frontend.test/reset-password/")

	// the embedded token must be a valid reset token for alice
	token := sender.body[strings.LastIndex(sender.body, "/")+1:]
	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, auth.TokenTypeReset, claims.Type)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _, sender := newAuthService(newFakeUsers())
	err := svc.ForgotPassword(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, sender.to)
}

func TestResetPassword(t *testing.T) {
	users := newFakeUsers()
	svc, tm, _ := newAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))
	u, _ := users.GetByEmail(context.Background(), "a@x.com")

	token, err := tm.IssueReset(u.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "NewGoodPass1"))

	_, _, err = svc.Login(context.Background(), "a@x.com", "Password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "a@x.com", "NewGoodPass1")
	assert.NoError(t, err)
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	users := newFakeUsers()
	svc, tm, _ := newAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))
	u, _ := users.GetByEmail(context.Background(), "a@x.com")

	// a login token must not double as a reset credential
	token, err := tm.Issue(u.ID, u.RoleID)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "NewGoodPass1")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordBadToken(t *testing.T) {
	svc, _, _ := newAuthService(newFakeUsers())
	err := svc.ResetPassword(context.Background(), "garbage", "NewGoodPass1")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordWeakPassword(t *testing.T) {
	users := newFakeUsers()
	svc, tm, _ := newAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "Password1", 2))
	u, _ := users.GetByEmail(context.Background(), "a@x.com")
	token, err := tm.IssueReset(u.ID)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), token, "alllowercase1")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	m.Run()
}
