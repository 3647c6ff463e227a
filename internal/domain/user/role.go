package user

import (
	"strings"

	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole  = errs.Mark(errs.New("invalid role"), errs.ErrValidation)
	ErrMissingActor = errs.Mark(errs.New("actor identity is required"), errs.ErrForbidden)
)

type Role string

const (
	RoleLearner Role = "learner"
	RoleGuide   Role = "guide"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleLearner, RoleGuide, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Actor is the pre-authenticated caller of every command.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func NewActor(userID uuid.UUID, role Role) (Actor, error) {
	if userID == uuid.Nil {
		return Actor{}, ErrMissingActor
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{UserID: userID, Role: role}, nil
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
