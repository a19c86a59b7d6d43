package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/models"
)

// Storage-level sentinels. Implementations translate driver errors into
// these; services attach resource-specific meaning.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string, roleID int64) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type Roles interface {
	GetByID(ctx context.Context, id int64) (models.Role, error)
}

type Posts interface {
	Create(ctx context.Context, title, content string, userID int64) (models.Post, error)
	GetByID(ctx context.Context, id int64) (models.Post, error)
	GetWithAssociations(ctx context.Context, id int64) (models.Post, error)
	ListWithAssociations(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int64, title, content string) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type Comments interface {
	Create(ctx context.Context, content string, userID, postID int64) (models.Comment, error)
	GetByID(ctx context.Context, id int64) (models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, id int64, content string) (models.Comment, error)
	Delete(ctx context.Context, id int64) error
}
