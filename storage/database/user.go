package database

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jjyf27/redpro/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

type dbUser struct {
	ID           int          `db:"id"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Email        string       `db:"email"`
	Phone        string       `db:"phone"`
	PasswordHash []byte       `db:"password_hash"`
	CreatedAt    time.Time    `db:"created_at"`
	LastLogin    sql.NullTime `db:"last_login"`
}

func (u dbUser) toCore() user.User {
	usr := user.User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	}
	if u.LastLogin.Valid {
		usr.LastLogin = u.LastLogin.Time.UTC()
	}
	return usr
}

func (repo *userRepository) CheckEmailUniqueness(email string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM "user" WHERE email = $1)`
	if err := repo.db.Get(&exists, query, email); err != nil {
		return err
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	query := `
	INSERT INTO "user" (first_name, last_name, email, phone, password_hash, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`
	err := repo.db.QueryRow(
		query, usr.FirstName, usr.LastName, usr.Email, usr.Phone, usr.PasswordHash, usr.CreatedAt,
	).Scan(&usr.ID)
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	var row dbUser
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return row.toCore(), nil
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	var row dbUser
	if err := repo.db.Get(&row, `SELECT * FROM "user" WHERE email = $1`, email); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return row.toCore(), nil
}

func (repo *userRepository) SetLastLogin(usr user.User) (user.User, error) {
	usr.LastLogin = time.Now().UTC()
	if _, err := repo.db.Exec(`UPDATE "user" SET last_login = $1 WHERE id = $2`, usr.LastLogin, usr.ID); err != nil {
		return user.User{}, err
	}
	return usr, nil
}
