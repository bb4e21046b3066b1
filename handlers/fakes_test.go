package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/models"
	"github.com/Moon2322/Task-App-Manager/services"
)

// In-memory stores with the same contract as the mongo repositories, so the
// whole HTTP surface can be exercised without a database.

type memUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memUserStore) Insert(_ context.Context, user models.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user.ID, nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, services.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, services.ErrUserNotFound
}

func (s *memUserStore) FindByEmails(_ context.Context, emails []string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool, len(emails))
	for _, email := range emails {
		wanted[email] = true
	}
	found := []models.User{}
	for _, user := range s.users {
		if wanted[user.Email] {
			found = append(found, user)
		}
	}
	return found, nil
}

func (s *memUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.User{}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			found = append(found, user)
		}
	}
	return found, nil
}

func (s *memUserStore) SetLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return services.ErrUserNotFound
	}
	user.LastLogin = at
	s.users[id] = user
	return nil
}

type memGroupStore struct {
	mu     sync.RWMutex
	groups map[primitive.ObjectID]models.Group
}

func newMemGroupStore() *memGroupStore {
	return &memGroupStore{groups: make(map[primitive.ObjectID]models.Group)}
}

func (s *memGroupStore) Insert(_ context.Context, group models.Group) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group.ID = primitive.NewObjectID()
	s.groups[group.ID] = group
	return group.ID, nil
}

func (s *memGroupStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	group, ok := s.groups[id]
	if !ok {
		return models.Group{}, services.ErrGroupNotFound
	}
	return group, nil
}

func (s *memGroupStore) FindByCreator(_ context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.Group{}
	for _, group := range s.groups {
		if group.Creator == userID {
			found = append(found, group)
		}
	}
	return found, nil
}

func (s *memGroupStore) FindByMember(_ context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.Group{}
	for _, group := range s.groups {
		for _, member := range group.Members {
			if member == userID {
				found = append(found, group)
				break
			}
		}
	}
	return found, nil
}

func (s *memGroupStore) AddMembers(_ context.Context, groupID primitive.ObjectID, memberIDs []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[groupID]
	if !ok {
		return services.ErrGroupNotFound
	}
	present := make(map[primitive.ObjectID]bool, len(group.Members))
	for _, member := range group.Members {
		present[member] = true
	}
	for _, id := range memberIDs {
		if !present[id] {
			group.Members = append(group.Members, id)
			present[id] = true
		}
	}
	s.groups[groupID] = group
	return nil
}

type memTaskStore struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (s *memTaskStore) Insert(_ context.Context, task models.Task) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.ID = primitive.NewObjectID()
	s.tasks[task.ID] = task
	return task.ID, nil
}

func (s *memTaskStore) FindByAssignee(_ context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := []models.Task{}
	for _, task := range s.tasks {
		for _, assignee := range task.AssignedTo {
			if assignee == userID {
				found = append(found, task)
				break
			}
		}
	}
	return found, nil
}

func (s *memTaskStore) FindByGroups(_ context.Context, groupIDs []primitive.ObjectID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[primitive.ObjectID]bool, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = true
	}
	found := []models.Task{}
	for _, task := range s.tasks {
		if task.Group != nil && wanted[*task.Group] {
			found = append(found, task)
		}
	}
	return found, nil
}

func (s *memTaskStore) UpdateStatus(_ context.Context, taskID primitive.ObjectID, status models.TaskStatus) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return models.Task{}, services.ErrTaskNotFound
	}
	task.Status = status
	s.tasks[taskID] = task
	return task, nil
}
