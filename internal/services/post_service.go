package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type PostService struct {
	posts repo.Posts
}

func NewPostService(posts repo.Posts) *PostService { return &PostService{posts: posts} }

func (s *PostService) Create(ctx context.Context, callerID int64, title, content string) (models.Post, error) {
	return s.posts.Create(ctx, title, content, callerID)
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.ListWithAssociations(ctx)
	if posts == nil && err == nil {
		posts = []models.Post{}
	}
	return posts, err
}

func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	p, err := s.posts.GetWithAssociations(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	return p, err
}

func (s *PostService) Update(ctx context.Context, id, callerID int64, title, content string) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		return models.Post{}, err
	}
	if !isOwner(p, callerID) {
		return models.Post{}, ErrNotOwner
	}
	return s.posts.Update(ctx, id, title, content)
}

func (s *PostService) Delete(ctx context.Context, id, callerID int64) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if !isOwner(p, callerID) {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}
