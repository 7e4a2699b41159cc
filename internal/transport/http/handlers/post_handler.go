package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
	"github.com/sumanthd032/smartblog/pkg/validator"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	errs := make(validator.ValidationErrors)

	skip := queryInt(q.Get("skip"), "skip", errs)
	limit := queryInt(q.Get("limit"), "limit", errs)
	if errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	posts, err := h.postService.List(r.Context(), service.ListPostsInput{
		Skip:   skip,
		Limit:  limit,
		Query:  q.Get("q"),
		Author: q.Get("author"),
	})
	if err != nil {
		writeServiceError(w, r, err, "list posts")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	post, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err, "get post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.PostInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	post, err := h.postService.Create(r.Context(), auth.PrincipalFromContext(r.Context()), input)
	if err != nil {
		writeServiceError(w, r, err, "create post")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	var input service.PostInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	post, err := h.postService.Update(r.Context(), auth.PrincipalFromContext(r.Context()), postID, input)
	if err != nil {
		writeServiceError(w, r, err, "update post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	if err := h.postService.Delete(r.Context(), auth.PrincipalFromContext(r.Context()), postID); err != nil {
		writeServiceError(w, r, err, "delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer parameter.
func queryInt(raw, field string, errs validator.ValidationErrors) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		errs.Add(field, "Must be a non-negative integer")
		return 0
	}
	return n
}
