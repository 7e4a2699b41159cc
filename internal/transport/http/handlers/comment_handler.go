package handlers

import (
	"net/http"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	comments, err := h.commentService.List(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err, "list comments")
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "id", "post")
	if !ok {
		return
	}

	var input service.CreateCommentInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	c, err := h.commentService.Create(r.Context(), auth.PrincipalFromContext(r.Context()), postID, input)
	if err != nil {
		writeServiceError(w, r, err, "create comment")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r, "id", "comment")
	if !ok {
		return
	}

	if err := h.commentService.Delete(r.Context(), auth.PrincipalFromContext(r.Context()), commentID); err != nil {
		writeServiceError(w, r, err, "delete comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
