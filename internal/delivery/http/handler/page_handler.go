package handler

import "net/http"

// PageHandler renders the public and member pages.
type PageHandler struct {
	renderer *Renderer
}

func NewPageHandler(renderer *Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// Home handles GET /. Authenticated visitors go straight to the members area.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/members", http.StatusFound)
		return
	}
	h.renderer.Render(w, http.StatusOK, "index.html", nil)
}

// LoginPage handles GET /login and /loginpage.
func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/members", http.StatusFound)
		return
	}
	h.renderer.Render(w, http.StatusOK, "login.html", nil)
}

// SignupPage handles GET /signup and /signuppage.
func (h *PageHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/members", http.StatusFound)
		return
	}
	h.renderer.Render(w, http.StatusOK, "signup.html", nil)
}

// Members handles GET /members and /memberspage. Reached only through the
// auth gate, so a session is always present.
func (h *PageHandler) Members(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	h.renderer.Render(w, http.StatusOK, "members.html", struct {
		Username string
	}{Username: session.Username})
}

// GetUsername handles GET /getUsername for the members page script.
func (h *PageHandler) GetUsername(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	SendJSON(w, http.StatusOK, map[string]string{"username": session.Username})
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "404.html", nil)
}
