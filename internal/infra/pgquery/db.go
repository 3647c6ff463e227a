// Package pgquery holds the SQL statements and row types shared by the
// repositories and read stores.
package pgquery

import "guidely/internal/infra/db"

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
