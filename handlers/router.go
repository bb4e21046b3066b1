package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Moon2322/Task-App-Manager/middleware"
	"github.com/Moon2322/Task-App-Manager/services"
)

// NewRouter wires every endpoint. /api/register and /api/login are open,
// everything else sits behind the bearer-token middleware.
func NewRouter(userHandler *UserHandler, groupHandler *GroupHandler, taskHandler *TaskHandler, jwtService *services.JWTService) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/register", userHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", userHandler.Login).Methods(http.MethodPost)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.JWTAuth(jwtService))

	protected.HandleFunc("/protected", userHandler.Protected).Methods(http.MethodGet)

	protected.HandleFunc("/tasks", taskHandler.GetTasks).Methods(http.MethodGet)
	protected.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	protected.HandleFunc("/tasks/{id}/status", taskHandler.UpdateTaskStatus).Methods(http.MethodPut)

	protected.HandleFunc("/groups", groupHandler.CreateGroup).Methods(http.MethodPost)
	protected.HandleFunc("/user/groups", groupHandler.GetUserGroups).Methods(http.MethodGet)
	protected.HandleFunc("/groups/{id}/add-members", groupHandler.AddMembers).Methods(http.MethodPost)

	return r
}
