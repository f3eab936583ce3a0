package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"memberportal/internal/application/auth"
	domain "memberportal/internal/domain/auth"
	"memberportal/internal/domain/user"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Signup handles POST /signup. The page script submits JSON and expects
// either {"redirect": ...} or {"error": ...} back.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.Signup(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUsername),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidPassword):
			SendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrUserAlreadyExists):
			SendError(w, user.ErrUserAlreadyExists.Error(), http.StatusConflict)
		default:
			SendError(w, "Failed to sign up user", http.StatusInternalServerError)
		}
		return
	}

	SetSessionCookie(w, session)
	SendJSON(w, http.StatusOK, map[string]string{"redirect": "/members"})
}

// Login handles POST /login. The page script submits a url-encoded form;
// success is a redirect to the members area, failure a uniform 401 that
// does not reveal whether the email exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	req := domain.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	SetSessionCookie(w, session)
	http.Redirect(w, r, "/members", http.StatusFound)
}

// Logout handles GET and POST /logout. Logging out without a session is
// fine; the client ends up on the home page either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := SessionToken(r)
	if err := h.service.Logout(token); err != nil {
		http.Error(w, "Error logging out", http.StatusInternalServerError)
		return
	}

	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
