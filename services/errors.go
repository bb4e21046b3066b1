package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserExists      = errors.New("user with username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")

	ErrGroupNameRequired = errors.New("group name is required")
	ErrGroupNotFound     = errors.New("group not found")

	ErrTaskNameRequired = errors.New("task name is required")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidStatus    = errors.New("invalid task status")
)

// MissingEmailsError reports which member/assignee emails did not resolve
// to registered users. The list goes back to the client verbatim.
type MissingEmailsError struct {
	Missing []string
}

func (e *MissingEmailsError) Error() string {
	return fmt.Sprintf("emails do not match existing users: %s", strings.Join(e.Missing, ", "))
}
