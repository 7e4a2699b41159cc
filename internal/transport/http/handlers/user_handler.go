package handlers

import (
	"net/http"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFromContext(r.Context())
	if err := auth.RequirePrincipal(p); err != nil {
		writeServiceError(w, r, err, "me")
		return
	}

	writeJSON(w, http.StatusOK, p.User)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateProfileInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), auth.PrincipalFromContext(r.Context()), input)
	if err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetProfile(r.Context(), auth.PrincipalFromContext(r.Context()), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "get profile")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
