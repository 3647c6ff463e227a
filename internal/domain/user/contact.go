package user

import "github.com/google/uuid"

// Contact is the addressing data notifications need for a user.
type Contact struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  Role
}

func (c Contact) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Email
}
