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

type CommentsHandler struct {
	svc *services.CommentService
}

func NewCommentsHandler(svc *services.CommentService) *CommentsHandler {
	return &CommentsHandler{svc: svc}
}

type createCommentReq struct {
	Content string `json:"content"`
	PostID  int64  `json:"postId"`
}

func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("content", req.Content, "Content is required"),
		validate.Positive("postId", req.PostID, "Post ID must be an integer"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	c, err := h.svc.Create(r.Context(), caller.ID, req.PostID, req.Content)
	switch {
	case err == nil:
		slog.Info("comment created", "comment_id", c.ID, "user_id", caller.ID)
		httpx.WriteJSON(w, http.StatusCreated, c)
	case errors.Is(err, services.ErrPostNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Post not found")
	default:
		slog.Error("create comment: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error creating comment")
	}
}

func (h *CommentsHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ef := idParam(r, "id", "Post ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}
	comments, err := h.svc.ListByPost(r.Context(), postID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, comments)
	case errors.Is(err, services.ErrPostNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Post not found")
	default:
		slog.Error("list comments: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error fetching comments")
	}
}

type updateCommentReq struct {
	Content string `json:"content"`
}

func (h *CommentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ef := idParam(r, "id", "Comment ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}
	var req updateCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("content", req.Content, "Content is required"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	c, err := h.svc.Update(r.Context(), id, caller.ID, req.Content)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, c)
	case errors.Is(err, services.ErrCommentNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrNotOwner):
		httpx.WriteMessage(w, http.StatusForbidden, "You can only edit your own comments")
	default:
		slog.Error("update comment: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error updating comment")
	}
}

func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ef := idParam(r, "id", "Comment ID must be an integer")
	if ef != nil {
		httpx.WriteFieldErrors(w, validate.Errs{*ef})
		return
	}

	caller, _ := middleware.UserFrom(r.Context())
	err := h.svc.Delete(r.Context(), id, caller.ID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, services.ErrCommentNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, services.ErrNotOwner):
		httpx.WriteMessage(w, http.StatusForbidden, "You can only delete your own comments")
	default:
		slog.Error("delete comment: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error deleting comment")
	}
}
