package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/logging"
	"github.com/Moon2322/Task-App-Manager/models"
	"github.com/Moon2322/Task-App-Manager/services"
)

type TaskHandler struct {
	TaskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{TaskService: taskService}
}

type CreateTaskRequest struct {
	Nametask    string   `json:"Nametask"`
	Description string   `json:"Description"`
	Category    string   `json:"category"`
	Deadline    string   `json:"deadline"`
	Group       string   `json:"group"`
	AssignedTo  []string `json:"assignedTo"`
}

type UpdateStatusRequest struct {
	Status *int `json:"status"`
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	tasks, err := h.TaskService.ListVisibleTo(r.Context(), userID)
	if err != nil {
		logging.Logger.Errorf("Event ID: TASK_LIST_FAILED, Description: Failed to list tasks for %s: %v", userID.Hex(), err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if req.Nametask == "" {
		respondError(w, http.StatusBadRequest, "Nametask is required")
		return
	}

	input := services.CreateTaskInput{
		Name:        req.Nametask,
		Description: req.Description,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
	}

	if req.Deadline != "" {
		deadline, err := parseDeadline(req.Deadline)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid deadline format")
			return
		}
		input.Deadline = deadline
	}

	if req.Group != "" {
		groupID, err := primitive.ObjectIDFromHex(req.Group)
		if err != nil {
			respondError(w, http.StatusBadRequest, "The group does not exist")
			return
		}
		input.Group = &groupID
	}

	task, err := h.TaskService.Create(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNameRequired):
			respondError(w, http.StatusBadRequest, "Nametask is required")
		case errors.Is(err, services.ErrGroupNotFound):
			respondError(w, http.StatusBadRequest, "The group does not exist")
		default:
			if missing, ok := services.IsMissingEmails(err); ok {
				respondMissingEmails(w, "One or more emails do not match existing users", missing.Missing)
				return
			}
			logging.Logger.Errorf("Event ID: TASK_CREATE_FAILED, Description: Failed to create task '%s': %v", req.Nametask, err)
			respondError(w, http.StatusInternalServerError, "Failed to create task")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Task created successfully",
		"task":    task,
	})
}

func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}

	taskID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == nil {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	task, err := h.TaskService.UpdateStatus(r.Context(), taskID, models.TaskStatus(*req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, services.ErrTaskNotFound):
			respondError(w, http.StatusNotFound, "Task not found")
		default:
			logging.Logger.Errorf("Event ID: TASK_STATUS_FAILED, Description: Failed to update status of task %s: %v", taskID.Hex(), err)
			respondError(w, http.StatusInternalServerError, "Failed to update task status")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Status updated",
		"task":    task,
	})
}

// parseDeadline accepts the two formats the frontend sends: a full RFC 3339
// timestamp or a bare date from the date picker.
func parseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
