package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"taskdesk/internal/model"
	"taskdesk/internal/service"
)

type taskRequest struct {
	Content    string     `json:"content"`
	CategoryID *uint      `json:"category_id,omitempty"`
	Due        *time.Time `json:"task_due,omitempty"`
	IsComplete bool       `json:"is_complete"`
}

func (r taskRequest) toInput() service.TaskInput {
	input := service.TaskInput{
		Content:    r.Content,
		CategoryID: r.CategoryID,
		IsComplete: r.IsComplete,
	}
	if r.Due != nil {
		input.Due = *r.Due
	}
	return input
}

type selectionRequest struct {
	TaskIDs []uint `json:"task_ids"`
	Action  string `json:"action"`
}

type dashboardResponse struct {
	Overdue []model.Task `json:"overdue"`
	Today   []model.Task `json:"today"`
}

func taskIDFrom(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// handleDashboard renders the two buckets the start page is built from:
// overdue tasks awaiting a reschedule and today's pending tasks.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	now := s.now()
	overdue, err := s.tasks.Overdue(r.Context(), user, now)
	if err != nil {
		s.writeError(w, err)
		return
	}
	today, err := s.tasks.DueToday(r.Context(), user, now)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dashboardResponse{Overdue: overdue, Today: today})
}

func (s *Server) handleScheduleSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	result, err := s.tasks.ApplyToSchedule(r.Context(), userFrom(r), req.TaskIDs, service.BulkAction(req.Action), s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	// Completion is not settable at creation; new tasks start incomplete.
	input := req.toInput()
	input.IsComplete = false
	task, err := s.tasks.Create(r.Context(), userFrom(r), input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFrom(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid task id"})
		return
	}
	task, err := s.tasks.Get(r.Context(), userFrom(r), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFrom(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid task id"})
		return
	}
	var req taskRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	task, err := s.tasks.Update(r.Context(), userFrom(r), id, req.toInput())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFrom(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid task id"})
		return
	}
	if err := s.tasks.Delete(r.Context(), userFrom(r), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.Upcoming(r.Context(), userFrom(r), s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.History(r.Context(), userFrom(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}
