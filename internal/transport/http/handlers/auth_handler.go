package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/sumanthd032/smartblog/internal/service"
	"github.com/sumanthd032/smartblog/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, "register")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login accepts either an OAuth2 password-style form or a JSON body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			writeBodyError(w, err, "INVALID_FORM", "Invalid form body")
			return
		}
		input.Username = r.PostFormValue("username")
		input.Password = r.PostFormValue("password")
	default:
		if !decodeJSON(w, r, &input) {
			return
		}
	}

	if errs := validator.Struct(input); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
