package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Moon2322/Task-App-Manager/logging"
	"github.com/Moon2322/Task-App-Manager/middleware"
	"github.com/Moon2322/Task-App-Manager/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUserPayload is the slice of the user document the frontend keeps
// next to the token.
type LoginUserPayload struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			respondError(w, http.StatusBadRequest, "User already exists")
			return
		}
		logging.Logger.Errorf("Event ID: USER_REGISTER_FAILED, Description: Registration failed for '%s': %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, services.ErrInvalidPassword):
			respondError(w, http.StatusBadRequest, "Incorrect password")
		default:
			logging.Logger.Errorf("Event ID: USER_LOGIN_FAILED, Description: Login failed for '%s': %v", req.Username, err)
			respondError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": LoginUserPayload{
			UserID:   user.ID.Hex(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Protected echoes the decoded claims; the SPA uses it to check that a
// stored token is still valid.
func (h *UserHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Protected route accessed",
		"user":    claims,
	})
}
