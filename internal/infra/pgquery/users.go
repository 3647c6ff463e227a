package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const findUserContact = `SELECT id, email, name, role FROM users WHERE id = $1`

func (q *Queries) FindUserContact(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	var u Users
	err := db.QueryRow(ctx, findUserContact, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role)
	return u, err
}
