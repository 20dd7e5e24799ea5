package sqldb

import (
	"database/sql"
	"time"
)

// ImpressionDB stores one row per listing or detail view. The rows are
// only ever read by external analytics tooling.
type ImpressionDB struct {
	*sql.DB
	insert *sql.Stmt
}

func NewImpressionDB(db *sql.DB) *ImpressionDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS impression (
			eventId varchar(36) PRIMARY KEY,
			postingUid varchar(16) NOT NULL, /* empty for listing views */
			kind varchar(16) NOT NULL,
			ts int(11) NOT NULL
		);`)

	var impressionDB = &ImpressionDB{}
	impressionDB.DB = db
	impressionDB.insert = mustPrepare(db, "INSERT INTO impression (eventId, postingUid, kind, ts) VALUES (?, ?, ?, ?)")
	return impressionDB
}

func (db *ImpressionDB) InsertImpression(eventID, postingUID, kind string) error {
	_, err := db.insert.Exec(eventID, postingUID, kind, time.Now().Unix())
	return err
}
