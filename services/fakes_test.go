package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/models"
)

type fakeUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *fakeUserStore) Insert(_ context.Context, user models.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user.ID, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *fakeUserStore) FindByEmails(_ context.Context, emails []string) ([]models.User, error) {
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

func (s *fakeUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
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

func (s *fakeUserStore) SetLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.LastLogin = at
	s.users[id] = user
	return nil
}

type fakeGroupStore struct {
	mu     sync.RWMutex
	groups map[primitive.ObjectID]models.Group
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{groups: make(map[primitive.ObjectID]models.Group)}
}

func cloneGroup(g models.Group) models.Group {
	out := g
	out.Members = append([]primitive.ObjectID(nil), g.Members...)
	return out
}

func (s *fakeGroupStore) Insert(_ context.Context, group models.Group) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group.ID = primitive.NewObjectID()
	s.groups[group.ID] = cloneGroup(group)
	return group.ID, nil
}

func (s *fakeGroupStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[id]
	if !ok {
		return models.Group{}, ErrGroupNotFound
	}
	return cloneGroup(group), nil
}

func (s *fakeGroupStore) FindByCreator(_ context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := []models.Group{}
	for _, group := range s.groups {
		if group.Creator == userID {
			found = append(found, cloneGroup(group))
		}
	}
	return found, nil
}

func (s *fakeGroupStore) FindByMember(_ context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := []models.Group{}
	for _, group := range s.groups {
		for _, member := range group.Members {
			if member == userID {
				found = append(found, cloneGroup(group))
				break
			}
		}
	}
	return found, nil
}

// AddMembers mirrors the $addToSet/$each update of the mongo repository:
// one atomic union with no duplicates.
func (s *fakeGroupStore) AddMembers(_ context.Context, groupID primitive.ObjectID, memberIDs []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return ErrGroupNotFound
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

type fakeTaskStore struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[primitive.ObjectID]models.Task)}
}

func cloneTask(t models.Task) models.Task {
	out := t
	out.AssignedTo = append([]primitive.ObjectID(nil), t.AssignedTo...)
	if t.Group != nil {
		g := *t.Group
		out.Group = &g
	}
	return out
}

func (s *fakeTaskStore) Insert(_ context.Context, task models.Task) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = primitive.NewObjectID()
	s.tasks[task.ID] = cloneTask(task)
	return task.ID, nil
}

func (s *fakeTaskStore) FindByAssignee(_ context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := []models.Task{}
	for _, task := range s.tasks {
		for _, assignee := range task.AssignedTo {
			if assignee == userID {
				found = append(found, cloneTask(task))
				break
			}
		}
	}
	return found, nil
}

func (s *fakeTaskStore) FindByGroups(_ context.Context, groupIDs []primitive.ObjectID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]bool, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = true
	}

	found := []models.Task{}
	for _, task := range s.tasks {
		if task.Group != nil && wanted[*task.Group] {
			found = append(found, cloneTask(task))
		}
	}
	return found, nil
}

func (s *fakeTaskStore) UpdateStatus(_ context.Context, taskID primitive.ObjectID, status models.TaskStatus) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return models.Task{}, ErrTaskNotFound
	}
	task.Status = status
	s.tasks[taskID] = task
	return cloneTask(task), nil
}
