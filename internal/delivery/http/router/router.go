package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"memberportal/internal/application/auth"
	"memberportal/internal/delivery/http/handler"
	"memberportal/internal/delivery/http/middleware"
	"memberportal/internal/domain/user"
	"memberportal/web"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth  *handler.AuthHandler
	Pages *handler.PageHandler
	Admin *handler.AdminHandler
}

// Setup configures all routes for the application
func Setup(handlers Handlers, authService auth.Service, users user.Repository) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Sessions(authService))

	// Public pages
	r.Get("/", handlers.Pages.Home)
	r.Get("/login", handlers.Pages.LoginPage)
	r.Get("/loginpage", handlers.Pages.LoginPage)
	r.Get("/signup", handlers.Pages.SignupPage)
	r.Get("/signuppage", handlers.Pages.SignupPage)

	// Auth actions
	r.Post("/signup", handlers.Auth.Signup)
	r.Post("/login", handlers.Auth.Login)
	r.Get("/logout", handlers.Auth.Logout)
	r.Post("/logout", handlers.Auth.Logout)

	// Member area
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/members", handlers.Pages.Members)
		r.Get("/memberspage", handlers.Pages.Members)
		r.Get("/getUsername", handlers.Pages.GetUsername)

		// Admin panel
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(users, user.RoleAdmin))

			r.Get("/admin", handlers.Admin.AdminPage)
			r.Post("/promote", handlers.Admin.Promote)
			r.Post("/demote", handlers.Admin.Demote)
		})
	})

	// Static assets
	static := http.FileServer(http.FS(web.Static()))
	r.Handle("/js/*", static)
	r.Handle("/css/*", static)
	r.Handle("/image/*", static)

	r.NotFound(handlers.Pages.NotFound)

	return r
}
