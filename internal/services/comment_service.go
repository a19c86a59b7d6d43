package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type CommentService struct {
	comments repo.Comments
	posts    repo.Posts
}

func NewCommentService(comments repo.Comments, posts repo.Posts) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create checks the target post exists before inserting.
func (s *CommentService) Create(ctx context.Context, callerID, postID int64, content string) (models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Comment{}, ErrPostNotFound
		}
		return models.Comment{}, err
	}
	return s.comments.Create(ctx, content, callerID, postID)
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if comments == nil && err == nil {
		comments = []models.Comment{}
	}
	return comments, err
}

func (s *CommentService) Update(ctx context.Context, id, callerID int64, content string) (models.Comment, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Comment{}, ErrCommentNotFound
		}
		return models.Comment{}, err
	}
	if !isOwner(c, callerID) {
		return models.Comment{}, ErrNotOwner
	}
	return s.comments.Update(ctx, id, content)
}

func (s *CommentService) Delete(ctx context.Context, id, callerID int64) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if !isOwner(c, callerID) {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, id)
}
