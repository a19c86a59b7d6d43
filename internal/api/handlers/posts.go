package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type PostsHandler struct {
	svc *services.PostService
}

func NewPostsHandler(svc *services.PostService) *PostsHandler { return &PostsHandler{svc: svc} }

type postReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("title", req.Title, "Title is required"),
		validate.Required("content", req.Content, "Content is required"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	p, err := h.svc.Create(r.Context(), caller.ID, req.Title, req.Content)
	if err != nil {
		slog.Error("create post: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error creating post")
		return
	}
	slog.Info("post created", "post_id", p.ID, "user_id", caller.ID)
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("list posts: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching posts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ef := idParam(r, "id", "Post ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, p)
	case errors.Is(err, services.ErrPostNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Post not found")
	default:
		slog.Error("get post: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching post")
	}
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ef := idParam(r, "id", "Post ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}
	var req postReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("title", req.Title, "Title is required"),
		validate.Required("content", req.Content, "Content is required"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	p, err := h.svc.Update(r.Context(), id, caller.ID, req.Title, req.Content)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, p)
	case errors.Is(err, services.ErrPostNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrNotOwner):
		httpx.WriteMessage(w, http.StatusForbidden, "You can only edit your own posts")
	default:
		slog.Error("update post: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error updating post")
	}
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ef := idParam(r, "id", "Post ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	err := h.svc.Delete(r.Context(), id, caller.ID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, services.ErrPostNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrNotOwner):
		httpx.WriteMessage(w, http.StatusForbidden, "You can only delete your own posts")
	default:
		slog.Error("delete post: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error deleting post")
	}
}
