package services

import (
	"context"
	"time"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type fakeUsers struct {
	seq   int64
	users map[int64]models.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{users: map[int64]models.User{}} }

func (f *fakeUsers) Create(_ context.Context, username, email, passwordHash string, roleID int64) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return models.User{}, repo.ErrDuplicate
		}
	}
	f.seq++
	u := models.User{
		ID: f.seq, Username: username, Email: email, PasswordHash: passwordHash,
		RoleID: roleID, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

type fakeRoles struct{}

func (fakeRoles) GetByID(_ context.Context, id int64) (models.Role, error) {
	if id == 1 {
		return models.Role{ID: 1, Name: "admin"}, nil
	}
	if id == 2 {
		return models.Role{ID: 2, Name: "user"}, nil
	}
	return models.Role{}, repo.ErrNotFound
}

type fakePosts struct {
	seq   int64
	posts map[int64]models.Post
}

func newFakePosts() *fakePosts { return &fakePosts{posts: map[int64]models.Post{}} }

func (f *fakePosts) Create(_ context.Context, title, content string, userID int64) (models.Post, error) {
	f.seq++
	p := models.Post{ID: f.seq, Title: title, Content: content, UserID: userID}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePosts) GetByID(_ context.Context, id int64) (models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return models.Post{}, repo.ErrNotFound
	}
	return p, nil
}

func (f *fakePosts) GetWithAssociations(ctx context.Context, id int64) (models.Post, error) {
	return f.GetByID(ctx, id)
}

func (f *fakePosts) ListWithAssociations(_ context.Context) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, id int64, title, content string) (models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return models.Post{}, repo.ErrNotFound
	}
	p.Title, p.Content = title, content
	f.posts[id] = p
	return p, nil
}

func (f *fakePosts) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeComments struct {
	seq      int64
	comments map[int64]models.Comment
}

func newFakeComments() *fakeComments { return &fakeComments{comments: map[int64]models.Comment{}} }

func (f *fakeComments) Create(_ context.Context, content string, userID, postID int64) (models.Comment, error) {
	f.seq++
	c := models.Comment{ID: f.seq, Content: content, UserID: userID, PostID: postID}
	f.comments[c.ID] = c
	return c, nil
}

func (f *fakeComments) GetByID(_ context.Context, id int64) (models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return models.Comment{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postID int64) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComments) Update(_ context.Context, id int64, content string) (models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return models.Comment{}, repo.ErrNotFound
	}
	c.Content = content
	f.comments[id] = c
	return c, nil
}

func (f *fakeComments) Delete(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}
