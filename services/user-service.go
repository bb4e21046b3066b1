package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Moon2322/Task-App-Manager/logging"
	"github.com/Moon2322/Task-App-Manager/models"
)

const DefaultRole = "student"

type UserService struct {
	Users      UserStore
	JWTService *JWTService
}

func NewUserService(users UserStore, jwtService *JWTService) *UserService {
	return &UserService{Users: users, JWTService: jwtService}
}

// Register stores a new user with a hashed password and the default role.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	if _, err := s.Users.FindByUsername(ctx, username); err == nil {
		logging.Logger.Warnf("Event ID: USER_REGISTER_DUPLICATE, Description: Registration rejected, username '%s' already exists", username)
		return models.User{}, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      DefaultRole,
		LastLogin: time.Now(),
	}

	id, err := s.Users.Insert(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %v", err)
	}
	user.ID = id

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User '%s' registered with ID %s", username, id.Hex())
	return user.Sanitize(), nil
}

// Login checks the credentials, refreshes last_login and issues a token.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logging.Logger.Warnf("Event ID: USER_LOGIN_BAD_PASSWORD, Description: Failed login attempt for '%s'", username)
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := s.JWTService.GenerateAuthToken(user.ID.Hex(), user.Username)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to generate token: %v", err)
	}

	user.LastLogin = time.Now()
	if err := s.Users.SetLastLogin(ctx, user.ID, user.LastLogin); err != nil {
		logging.Logger.Warnf("Event ID: USER_LAST_LOGIN_UPDATE_FAILED, Description: Could not update last_login for '%s': %v", username, err)
	}

	return user.Sanitize(), token, nil
}

// ResolveByEmails maps emails to registered users. When any email has no
// matching user the call fails with a MissingEmailsError naming them.
func (s *UserService) ResolveByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	return resolveByEmails(ctx, s.Users, emails)
}

func resolveByEmails(ctx context.Context, users UserStore, emails []string) ([]models.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	found, err := users.FindByEmails(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by email: %v", err)
	}

	foundEmails := make(map[string]bool, len(found))
	for _, u := range found {
		foundEmails[u.Email] = true
	}

	var missing []string
	seen := make(map[string]bool, len(emails))
	for _, email := range emails {
		if seen[email] {
			continue
		}
		seen[email] = true
		if !foundEmails[email] {
			missing = append(missing, email)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingEmailsError{Missing: missing}
	}

	return found, nil
}

// IsMissingEmails unwraps a MissingEmailsError if err carries one.
func IsMissingEmails(err error) (*MissingEmailsError, bool) {
	var missingErr *MissingEmailsError
	if errors.As(err, &missingErr) {
		return missingErr, true
	}
	return nil, false
}
