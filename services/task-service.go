package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/logging"
	"github.com/Moon2322/Task-App-Manager/models"
)

type TaskService struct {
	Tasks  TaskStore
	Groups GroupStore
	Users  UserStore
}

func NewTaskService(tasks TaskStore, groups GroupStore, users UserStore) *TaskService {
	return &TaskService{Tasks: tasks, Groups: groups, Users: users}
}

type CreateTaskInput struct {
	Name        string
	Description string
	Category    string
	Deadline    time.Time
	Group       *primitive.ObjectID
	AssignedTo  []string
}

// Create validates the input, resolves the assignee emails and persists a
// task in the default In Progress state.
func (s *TaskService) Create(ctx context.Context, creator primitive.ObjectID, in CreateTaskInput) (models.Task, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Task{}, ErrTaskNameRequired
	}

	if in.Group != nil {
		if _, err := s.Groups.FindByID(ctx, *in.Group); err != nil {
			return models.Task{}, err
		}
	}

	assignees, err := resolveByEmails(ctx, s.Users, in.AssignedTo)
	if err != nil {
		return models.Task{}, err
	}

	assigneeIDs := make([]primitive.ObjectID, 0, len(assignees))
	for _, a := range assignees {
		assigneeIDs = append(assigneeIDs, a.ID)
	}

	task := models.Task{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Status:      models.StatusInProgress,
		Deadline:    in.Deadline,
		Group:       in.Group,
		CreatedBy:   creator,
		AssignedTo:  assigneeIDs,
		CreatedAt:   time.Now(),
	}

	id, err := s.Tasks.Insert(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %v", err)
	}
	task.ID = id

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task '%s' created by %s", task.Name, creator.Hex())
	return task, nil
}

// ListVisibleTo returns the tasks assigned to the user plus the tasks of
// every group the user belongs to, each task at most once.
func (s *TaskService) ListVisibleTo(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	groups, err := s.Groups.FindByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user groups: %v", err)
	}

	groupIDs := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}

	assigned, err := s.Tasks.FindByAssignee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assigned tasks: %v", err)
	}

	var groupTasks []models.Task
	if len(groupIDs) > 0 {
		groupTasks, err = s.Tasks.FindByGroups(ctx, groupIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch group tasks: %v", err)
		}
	}

	tasks := make([]models.Task, 0, len(assigned)+len(groupTasks))
	seen := make(map[primitive.ObjectID]bool, len(assigned)+len(groupTasks))
	for _, t := range append(assigned, groupTasks...) {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// UpdateStatus moves a task to any of the four board states. No transition
// graph is enforced.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID primitive.ObjectID, status models.TaskStatus) (models.Task, error) {
	if !status.IsValid() {
		return models.Task{}, ErrInvalidStatus
	}

	task, err := s.Tasks.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return models.Task{}, err
	}

	logging.Logger.Infof("Event ID: TASK_STATUS_CHANGED, Description: Task %s moved to status %d", taskID.Hex(), status)
	return task, nil
}
