package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/baharkarakas/blog-backend/internal/auth"
	outmail "github.com/baharkarakas/blog-backend/internal/mail"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type AuthService struct {
	users        repo.Users
	roles        repo.Roles
	hasher       *auth.Hasher
	tokens       *auth.TokenManager
	mail         outmail.Sender
	resetBaseURL string
}

func NewAuthService(users repo.Users, roles repo.Roles, hasher *auth.Hasher, tokens *auth.TokenManager, sender outmail.Sender, resetBaseURL string) *AuthService {
	return &AuthService{
		users:        users,
		roles:        roles,
		hasher:       hasher,
		tokens:       tokens,
		mail:         sender,
		resetBaseURL: resetBaseURL,
	}
}

// Register creates a user after semantic validation: email format,
// password policy, email uniqueness, role existence. Validation runs
// before any write.
func (s *AuthService) Register(ctx context.Context, username, email, password string, roleID int64) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	if !auth.ValidPassword(password) {
		return ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrInvalidRole
		}
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if _, err := s.users.Create(ctx, username, email, hash, roleID); err != nil {
		// Unique index on email can still fire under a racing register.
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}
	slog.InfoContext(ctx, "user registered", "email", email)
	return nil
}

// Login returns a signed session token and the matched user. The token
// subject is the user id; the role id rides along as a claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", models.User{}, ErrUserNotFound
		}
		return "", models.User{}, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", models.User{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.RoleID)
	if err != nil {
		return "", models.User{}, err
	}
	slog.InfoContext(ctx, "user logged in", "user_id", u.ID)
	return token, u, nil
}

// ForgotPassword issues a reset token and mails a reset link. A send
// failure surfaces as an error; the issued token is simply never used
// and expires on its own.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	token, err := s.tokens.IssueReset(u.ID)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/%s", s.resetBaseURL, token)
	body := "Please click on the following link to reset your password: " + link
	return s.mail.Send(ctx, u.Email, "Password Reset Request", body)
}

// ResetPassword verifies a reset token, checks the new password against
// the registration policy and re-hashes.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil || claims.Type != auth.TokenTypeReset {
		return ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !auth.ValidPassword(newPassword) {
		return ErrWeakPassword
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	slog.InfoContext(ctx, "password reset", "user_id", u.ID)
	return nil
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
