package handlers

import (
	"net/http"
	"strconv"

	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/go-chi/chi/v5"
)

func idParam(r *http.Request, name, msg string) (int64, *validate.ErrField) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &validate.ErrField{Field: name, Msg: msg}
	}
	return id, nil
}
