package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"taskdesk/internal/service"
)

type categoryRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context(), userFrom(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	category, err := s.categories.Create(r.Context(), userFrom(r), req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid category id"})
		return
	}
	var req categoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	category, err := s.categories.Rename(r.Context(), userFrom(r), uint(id), req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid category id"})
		return
	}
	if err := s.categories.Delete(r.Context(), userFrom(r), uint(id)); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (s *Server) handleCategoryTasks(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	category, err := s.categories.GetBySlug(r.Context(), user, mux.Vars(r)["slug"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	tasks, err := s.tasks.ByCategory(r.Context(), user, category)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"tasks":    tasks,
	})
}

func (s *Server) handleCategorySelection(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	category, err := s.categories.GetBySlug(r.Context(), user, mux.Vars(r)["slug"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req selectionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	result, err := s.tasks.ApplyToCategory(r.Context(), user, category, req.TaskIDs, service.BulkAction(req.Action), s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
