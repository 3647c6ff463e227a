package queries

import (
	"context"

	"guidely/internal/domain/user"
	"guidely/internal/infra"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

var ErrUserNotFound = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

type ContactView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, actor user.Actor) (*ContactView, error)
}

type UserReadStore interface {
	FindContact(ctx context.Context, id uuid.UUID) (user.Contact, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor user.Actor) (*ContactView, error) {
	c, err := q.readStore.FindContact(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &ContactView{
		ID:    c.ID,
		Email: c.Email,
		Name:  c.Name,
		// the token is authoritative for the role
		Role: actor.Role.String(),
	}, nil
}
