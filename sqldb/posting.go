package sqldb

import (
	"database/sql"
	"time"

	"github.com/cambricorp/elixirstatus-web/core"
)

type PostingDB struct {
	*sql.DB
	count      *sql.Stmt
	deleteStmt *sql.Stmt
	getByID    *sql.Stmt
	getByUID   *sql.Stmt
	insert     *sql.Stmt
	listPublic *sql.Stmt
	update     *sql.Stmt
}

const postingColumns = `p.id, p.uid, p.permalink, p.ownerId, u.mail, p.title, p.body, p.scheduledAt, p.publishedAt, p.public`

func NewPostingDB(db *sql.DB) *PostingDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS posting (
			id INTEGER PRIMARY KEY,
			uid varchar(16) NOT NULL,
			permalink varchar(255) NOT NULL,
			ownerId int(11) NOT NULL,
			title text NOT NULL,
			body text NOT NULL,
			scheduledAt int(11), /* unix, null means not scheduled */
			publishedAt int(11) NOT NULL,
			public int(1) NOT NULL,
			UNIQUE(uid),
			UNIQUE(permalink)
		);`)

	var postingDB = &PostingDB{}
	postingDB.DB = db
	postingDB.count = mustPrepare(db, "SELECT COUNT(1) FROM posting WHERE public = 1")
	postingDB.deleteStmt = mustPrepare(db, "DELETE FROM posting WHERE id = ?")
	postingDB.getByID = mustPrepare(db, "SELECT "+postingColumns+" FROM posting p LEFT JOIN usr u ON u.id = p.ownerId WHERE p.id = ? LIMIT 1")
	postingDB.getByUID = mustPrepare(db, "SELECT "+postingColumns+" FROM posting p LEFT JOIN usr u ON u.id = p.ownerId WHERE p.uid = ? LIMIT 1")
	postingDB.insert = mustPrepare(db, "INSERT INTO posting (uid, permalink, ownerId, title, body, scheduledAt, publishedAt, public) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	postingDB.listPublic = mustPrepare(db, "SELECT "+postingColumns+" FROM posting p LEFT JOIN usr u ON u.id = p.ownerId WHERE p.public = 1 ORDER BY p.publishedAt DESC, p.id DESC LIMIT ? OFFSET ?")
	// uid, permalink, ownerId and publishedAt are immutable, the statement can't touch them
	postingDB.update = mustPrepare(db, "UPDATE posting SET title = ?, body = ?, scheduledAt = ?, public = ? WHERE id = ?")
	return postingDB
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPosting(row scanner) (*core.Posting, error) {

	var p = &core.Posting{}
	var ownerName sql.NullString
	var scheduledAt sql.NullInt64
	var publishedAt int64

	err := row.Scan(&p.ID, &p.UID, &p.Permalink, &p.OwnerID, &ownerName, &p.Title, &p.Text, &scheduledAt, &publishedAt, &p.Public)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.OwnerName = ownerName.String
	p.PublishedAt = time.Unix(publishedAt, 0)
	if scheduledAt.Valid {
		var t = time.Unix(scheduledAt.Int64, 0)
		p.ScheduledAt = &t
	}

	return p, nil
}

func nullScheduledAt(p *core.Posting) sql.NullInt64 {
	if p.ScheduledAt == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: p.ScheduledAt.Unix(), Valid: true}
}

func (db *PostingDB) CountPublicPostings() (int, error) {
	var count int
	return count, db.count.QueryRow().Scan(&count)
}

func (db *PostingDB) DeletePosting(id int) error {
	_, err := db.deleteStmt.Exec(id)
	return err
}

func (db *PostingDB) GetPosting(id int) (*core.Posting, error) {
	return scanPosting(db.getByID.QueryRow(id))
}

func (db *PostingDB) GetPostingByUID(uid string) (*core.Posting, error) {
	return scanPosting(db.getByUID.QueryRow(uid))
}

func (db *PostingDB) GetPublicPostings(limit, offset int) ([]*core.Posting, error) {

	rows, err := db.listPublic.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings = []*core.Posting{}

	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

func (db *PostingDB) InsertPosting(p *core.Posting) error {

	result, err := db.insert.Exec(p.UID, p.Permalink, p.OwnerID, p.Title, p.Text, nullScheduledAt(p), p.PublishedAt.Unix(), p.Public)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)

	return nil
}

func (db *PostingDB) UpdatePosting(p *core.Posting) error {
	_, err := db.update.Exec(p.Title, p.Text, nullScheduledAt(p), p.Public, p.ID)
	return err
}
