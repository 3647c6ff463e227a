package readstore

import (
	"context"

	"guidely/internal/domain/user"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserContact(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindContact(ctx context.Context, id uuid.UUID) (user.Contact, error) {
	row, err := r.queries.FindUserContact(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return user.Contact{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return user.Contact{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return user.Contact{}, infra.WrapRepoErr("stored user has an unknown role", err)
	}
	return user.Contact{ID: row.ID, Email: row.Email, Name: row.Name, Role: role}, nil
}
