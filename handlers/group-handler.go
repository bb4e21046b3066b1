package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/logging"
	"github.com/Moon2322/Task-App-Manager/middleware"
	"github.com/Moon2322/Task-App-Manager/services"
)

type GroupHandler struct {
	GroupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{GroupService: groupService}
}

type CreateGroupRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     *[]string `json:"members"`
}

type AddMembersRequest struct {
	Emails []string `json:"emails"`
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	// members must be present, an empty array is allowed
	if req.Name == "" || req.Members == nil {
		respondError(w, http.StatusBadRequest, "Name and members are required")
		return
	}

	group, err := h.GroupService.Create(r.Context(), userID, req.Name, req.Description, *req.Members)
	if err != nil {
		if missing, ok := services.IsMissingEmails(err); ok {
			respondMissingEmails(w, "One or more emails do not match existing users", missing.Missing)
			return
		}
		if errors.Is(err, services.ErrGroupNameRequired) {
			respondError(w, http.StatusBadRequest, "Name and members are required")
			return
		}
		logging.Logger.Errorf("Event ID: GROUP_CREATE_FAILED, Description: Failed to create group '%s': %v", req.Name, err)
		respondError(w, http.StatusInternalServerError, "Failed to create group")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Group created successfully",
		"group":   group,
	})
}

func (h *GroupHandler) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	creatorGroups, memberGroups, err := h.GroupService.ListForUser(r.Context(), userID)
	if err != nil {
		logging.Logger.Errorf("Event ID: GROUP_LIST_FAILED, Description: Failed to list groups for %s: %v", userID.Hex(), err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch groups")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"creatorGroups": creatorGroups,
		"memberGroups":  memberGroups,
	})
}

func (h *GroupHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}

	groupID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Group not found")
		return
	}

	var req AddMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if len(req.Emails) == 0 {
		respondError(w, http.StatusBadRequest, "Emails are required")
		return
	}

	if err := h.GroupService.AddMembers(r.Context(), groupID, req.Emails); err != nil {
		if missing, ok := services.IsMissingEmails(err); ok {
			respondMissingEmails(w, "Some emails do not exist", missing.Missing)
			return
		}
		if errors.Is(err, services.ErrGroupNotFound) {
			respondError(w, http.StatusNotFound, "Group not found")
			return
		}
		logging.Logger.Errorf("Event ID: GROUP_ADD_MEMBERS_FAILED, Description: Failed to add members to group %s: %v", groupID.Hex(), err)
		respondError(w, http.StatusInternalServerError, "Failed to add members")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"message": "Members added successfully"})
}

// requestUserID pulls the authenticated user's ID out of the claims the
// auth middleware stored on the request.
func requestUserID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return primitive.NilObjectID, false
	}
	return userID, true
}
