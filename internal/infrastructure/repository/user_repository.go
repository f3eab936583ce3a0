package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"memberportal/internal/domain/user"
	"memberportal/internal/infrastructure/database"
)

type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// Create inserts the user and relies on the store's unique constraints to
// reject duplicate usernames or emails, so two concurrent signups with the
// same identity cannot both land.
func (r *userRepository) Create(u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = user.RoleUser
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt

	query := r.db.Rebind(
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(email string) (*user.User, error) {
	query := r.db.Rebind(
		`SELECT id, username, email, password_hash, role, created_at, updated_at
		 FROM users WHERE email = ?`)
	return r.scanOne(r.db.QueryRow(query, email))
}

func (r *userRepository) GetByUsername(username string) (*user.User, error) {
	query := r.db.Rebind(
		`SELECT id, username, email, password_hash, role, created_at, updated_at
		 FROM users WHERE username = ?`)
	return r.scanOne(r.db.QueryRow(query, username))
}

func (r *userRepository) List() ([]user.User, error) {
	rows, err := r.db.Query(
		`SELECT id, username, email, password_hash, role, created_at, updated_at
		 FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) SetRole(email string, role user.Role) error {
	query := r.db.Rebind(`UPDATE users SET role = ?, updated_at = ? WHERE email = ?`)
	result, err := r.db.Exec(query, role, time.Now().UTC(), email)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) scanOne(row *sql.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
