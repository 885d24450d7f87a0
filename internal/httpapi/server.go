package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"taskdesk/internal/service"
)

// Server aggregates the services behind the JSON HTTP surface. It owns no
// business rules; every handler translates a request into service calls
// for the authenticated user and renders the outcome.
type Server struct {
	log        *zap.Logger
	auth       *service.AuthService
	sessions   *service.SessionService
	categories *service.CategoryService
	tasks      *service.TaskService

	// now is injectable for tests; everything time-dependent in a request
	// observes a single moment.
	now func() time.Time
}

func New(log *zap.Logger, auth *service.AuthService, sessions *service.SessionService, categories *service.CategoryService, tasks *service.TaskService) *Server {
	return &Server{
		log:        log,
		auth:       auth,
		sessions:   sessions,
		categories: categories,
		tasks:      tasks,
		now:        time.Now,
	}
}

// Router builds the route table. Everything below the auth middleware is
// scoped to the session's user.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireUser)

	authed.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)

	authed.HandleFunc("/tasks", s.handleDashboard).Methods(http.MethodGet)
	authed.HandleFunc("/tasks", s.handleCreateTask).Methods(http.MethodPost)
	authed.HandleFunc("/tasks/selection", s.handleScheduleSelection).Methods(http.MethodPost)
	authed.HandleFunc("/tasks/upcoming", s.handleUpcoming).Methods(http.MethodGet)
	authed.HandleFunc("/tasks/{id:[0-9]+}", s.handleGetTask).Methods(http.MethodGet)
	authed.HandleFunc("/tasks/{id:[0-9]+}", s.handleUpdateTask).Methods(http.MethodPut)
	authed.HandleFunc("/tasks/{id:[0-9]+}", s.handleDeleteTask).Methods(http.MethodDelete)
	authed.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)

	authed.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	authed.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	authed.HandleFunc("/categories/{id:[0-9]+}", s.handleRenameCategory).Methods(http.MethodPut)
	authed.HandleFunc("/categories/{id:[0-9]+}", s.handleDeleteCategory).Methods(http.MethodDelete)
	authed.HandleFunc("/categories/{slug}/tasks", s.handleCategoryTasks).Methods(http.MethodGet)
	authed.HandleFunc("/categories/{slug}/tasks/selection", s.handleCategorySelection).Methods(http.MethodPost)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "taskdesk"})
}
