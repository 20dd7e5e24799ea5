package sqldb

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/cambricorp/elixirstatus-web/auth"
	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/cambricorp/elixirstatus-web/util"
)

func clean(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return name
}

func hash(salt string, password string) string {
	var hash = sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(hash[:])
}

type user struct {
	id    int
	name  string
	admin bool
	salt  string
	pass  string // hash
}

func (u *user) hash(password string) string {
	return hash(u.salt, password)
}

func (u *user) ID() int {
	return u.id
}

func (u *user) Name() string {
	return u.name
}

func (u *user) Admin() bool {
	return u.admin
}

type UserDB struct {
	*sql.DB
	delete      *sql.Stmt
	get         *sql.Stmt
	getAll      *sql.Stmt
	getByName   *sql.Stmt
	insert      *sql.Stmt
	login       *sql.Stmt
	setAdmin    *sql.Stmt
	setPassword *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			mail varchar(128) NOT NULL,
			admin int(1) NOT NULL DEFAULT 0,
			salt varchar(64) NOT NULL DEFAULT '',
			password varchar(64) NOT NULL DEFAULT '',
			UNIQUE(mail)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.delete = mustPrepare(db, "DELETE FROM usr WHERE id = ?")
	userDB.get = mustPrepare(db, "SELECT mail, admin FROM usr WHERE id = ? LIMIT 1")
	userDB.getAll = mustPrepare(db, "SELECT id, mail, admin, salt FROM usr ORDER BY mail LIMIT ? OFFSET ?")
	userDB.getByName = mustPrepare(db, "SELECT id, admin FROM usr WHERE mail = ? LIMIT 1")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (mail) VALUES (?)") // empty password field should be safe because no hash value equals it
	userDB.login = mustPrepare(db, "SELECT id, admin, salt, password FROM usr WHERE mail = ?")
	userDB.setAdmin = mustPrepare(db, "UPDATE usr SET admin = ? WHERE id = ?")
	userDB.setPassword = mustPrepare(db, "UPDATE usr SET salt = ?, password = ? WHERE id = ?")
	return userDB
}

func (db *UserDB) ChangePassword(u auth.User, old, new string) error {
	if u.(*user).hash(old) != u.(*user).pass {
		return auth.ErrAuth
	}
	return db.SetPassword(u, new)
}

func (db *UserDB) Delete(u auth.User) error {
	_, err := db.delete.Exec(u.ID())
	return err
}

func (db *UserDB) GetUser(id int) (auth.User, error) {
	var u = &user{
		id: id,
	}
	err := db.get.QueryRow(id).Scan(&u.name, &u.admin)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) GetUserByName(name string) (auth.User, error) {
	var u = &user{
		name: clean(name),
	}
	err := db.getByName.QueryRow(u.name).Scan(&u.id, &u.admin)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) GetAllUsers(limit, offset int) ([]auth.User, error) {

	var all = []auth.User{}

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u = &user{}
		err = rows.Scan(&u.id, &u.name, &u.admin, &u.salt)
		if err != nil {
			return nil, err
		}
		all = append(all, u)
	}

	return all, rows.Err()
}

func (db *UserDB) InsertUser(name string) (auth.User, error) {
	name = clean(name)
	result, err := db.insert.Exec(name)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &user{
		id:   int(id),
		name: name,
	}, nil
}

func (db *UserDB) LoginUser(name, password string) (auth.User, error) {

	name = clean(name)

	var u = &user{
		name: name,
	}

	err := db.login.QueryRow(name).Scan(&u.id, &u.admin, &u.salt, &u.pass)
	if err == sql.ErrNoRows {
		return nil, auth.ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if u.hash(password) != u.pass {
		return nil, auth.ErrAuth // wrong password
	}

	return u, nil
}

func (db *UserDB) SetAdmin(u auth.User, admin bool) error {
	_, err := db.setAdmin.Exec(admin, u.ID())
	if err != nil {
		return err
	}
	u.(*user).admin = admin
	return nil
}

func (db *UserDB) SetPassword(u auth.User, password string) error {

	if password == "" {
		return errors.New("refusing to set empty password")
	}

	if u.ID() == 0 {
		return errors.New("can't set password of user 0")
	}

	salt, err := util.RandomString32()
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(salt, hash(salt, password), u.ID())
	if err != nil {
		return err
	}

	u.(*user).salt = salt
	return nil
}
