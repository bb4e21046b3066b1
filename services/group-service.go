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

type GroupService struct {
	Groups GroupStore
	Users  UserStore
}

func NewGroupService(groups GroupStore, users UserStore) *GroupService {
	return &GroupService{Groups: groups, Users: users}
}

// Create resolves the member emails, persists the group and returns it
// populated with the creator and member profiles. The creator is not added
// to the member list unless their own email was passed in.
func (s *GroupService) Create(ctx context.Context, creator primitive.ObjectID, name, description string, memberEmails []string) (models.PopulatedGroup, error) {
	if strings.TrimSpace(name) == "" {
		return models.PopulatedGroup{}, ErrGroupNameRequired
	}

	members, err := resolveByEmails(ctx, s.Users, memberEmails)
	if err != nil {
		return models.PopulatedGroup{}, err
	}

	memberIDs := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	group := models.Group{
		Name:        name,
		Description: description,
		Creator:     creator,
		Members:     memberIDs,
		CreatedAt:   time.Now(),
	}

	id, err := s.Groups.Insert(ctx, group)
	if err != nil {
		return models.PopulatedGroup{}, fmt.Errorf("failed to create group: %v", err)
	}
	group.ID = id

	logging.Logger.Infof("Event ID: GROUP_CREATED, Description: Group '%s' created by %s with %d members", name, creator.Hex(), len(memberIDs))
	return s.populate(ctx, group)
}

// ListForUser splits the user's groups into the ones they created and the
// ones they are only a member of. The two lists never share a group.
func (s *GroupService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.PopulatedGroup, []models.PopulatedGroup, error) {
	created, err := s.Groups.FindByCreator(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch created groups: %v", err)
	}

	memberOf, err := s.Groups.FindByMember(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch member groups: %v", err)
	}

	creatorGroups := make([]models.PopulatedGroup, 0, len(created))
	for _, g := range created {
		populated, err := s.populate(ctx, g)
		if err != nil {
			return nil, nil, err
		}
		creatorGroups = append(creatorGroups, populated)
	}

	memberGroups := make([]models.PopulatedGroup, 0, len(memberOf))
	for _, g := range memberOf {
		if g.Creator == userID {
			// already in creatorGroups
			continue
		}
		populated, err := s.populate(ctx, g)
		if err != nil {
			return nil, nil, err
		}
		memberGroups = append(memberGroups, populated)
	}

	return creatorGroups, memberGroups, nil
}

// AddMembers resolves the emails and unions the resulting IDs into the
// group's member list in one atomic store update.
func (s *GroupService) AddMembers(ctx context.Context, groupID primitive.ObjectID, emails []string) error {
	if _, err := s.Groups.FindByID(ctx, groupID); err != nil {
		return err
	}

	members, err := resolveByEmails(ctx, s.Users, emails)
	if err != nil {
		return err
	}

	memberIDs := make([]primitive.ObjectID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	if err := s.Groups.AddMembers(ctx, groupID, memberIDs); err != nil {
		return fmt.Errorf("failed to add members to group: %v", err)
	}

	logging.Logger.Infof("Event ID: GROUP_MEMBERS_ADDED, Description: %d members merged into group %s", len(memberIDs), groupID.Hex())
	return nil
}

func (s *GroupService) populate(ctx context.Context, group models.Group) (models.PopulatedGroup, error) {
	creator, err := s.Users.FindByID(ctx, group.Creator)
	if err != nil {
		return models.PopulatedGroup{}, fmt.Errorf("failed to fetch group creator: %v", err)
	}

	users, err := s.Users.FindByIDs(ctx, group.Members)
	if err != nil {
		return models.PopulatedGroup{}, fmt.Errorf("failed to fetch group members: %v", err)
	}

	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	members := make([]models.User, 0, len(group.Members))
	for _, id := range group.Members {
		if u, ok := byID[id]; ok {
			members = append(members, u.Sanitize())
		}
	}

	return models.PopulatedGroup{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		Creator:     creator.Sanitize(),
		Members:     members,
		CreatedAt:   group.CreatedAt,
	}, nil
}
