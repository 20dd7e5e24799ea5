// Package sqldb implements the storage interfaces on top of
// database/sql. The schema is created on construction, queries are
// prepared once. It is tested with SQLite and MySQL.
package sqldb

import (
	"database/sql"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(err)
	}
	return stmt
}
