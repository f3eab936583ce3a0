package handler

import (
	"errors"
	"net/http"

	"memberportal/internal/application/auth"
	"memberportal/internal/domain/user"
)

// AdminHandler serves the admin panel and the role mutations. All of its
// routes sit behind the admin gate; the handlers themselves perform no
// further authorization, so an admin can demote anyone including themselves.
type AdminHandler struct {
	service  auth.Service
	renderer *Renderer
}

func NewAdminHandler(service auth.Service, renderer *Renderer) *AdminHandler {
	return &AdminHandler{service: service, renderer: renderer}
}

// AdminPage handles GET /admin with the full user list.
func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		http.Error(w, "Failed to load users", http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, http.StatusOK, "admin.html", struct {
		Users []user.User
	}{Users: users})
}

// Promote handles POST /promote.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, h.service.Promote)
}

// Demote handles POST /demote.
func (h *AdminHandler) Demote(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, h.service.Demote)
}

func (h *AdminHandler) setRole(w http.ResponseWriter, r *http.Request, mutate func(email string) error) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	err := mutate(r.PostFormValue("email"))
	// A vanished user makes the mutation a no-op, not a failure; the admin
	// page simply re-renders without them.
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		http.Error(w, "Failed to update role", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusFound)
}
