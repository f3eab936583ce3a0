package repository

import (
	"database/sql"
	"errors"
	"time"

	"memberportal/internal/application/auth"
	domain "memberportal/internal/domain/auth"
	"memberportal/internal/infrastructure/database"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type sessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepository{db: db}
}

// Put upserts the session state for its token. Last write wins; the upsert
// is a single statement so a racing Delete cannot observe a half-written row.
func (r *sessionRepository) Put(session *domain.Session) error {
	query := r.db.Rebind(
		`INSERT INTO sessions (token, username, created_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (token) DO UPDATE SET
		   username = excluded.username,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`)

	_, err := r.db.Exec(query,
		session.Token, session.Username, session.CreatedAt, session.ExpiresAt)
	return err
}

// GetByToken returns ErrSessionNotFound for tokens that are absent or past
// their expiry, so an expired session is indistinguishable from no session.
func (r *sessionRepository) GetByToken(token string) (*domain.Session, error) {
	session := &domain.Session{}

	query := r.db.Rebind(
		`SELECT token, username, created_at, expires_at
		 FROM sessions WHERE token = ? AND expires_at > ?`)

	err := r.db.QueryRow(query, token, time.Now().UTC()).Scan(
		&session.Token, &session.Username, &session.CreatedAt, &session.ExpiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Delete is idempotent: removing a token that does not exist is a no-op.
func (r *sessionRepository) Delete(token string) error {
	query := r.db.Rebind(`DELETE FROM sessions WHERE token = ?`)
	_, err := r.db.Exec(query, token)
	return err
}

// DeleteExpired removes sessions past their expiry and reports how many
// rows went. Called periodically by the reaper.
func (r *sessionRepository) DeleteExpired() (int64, error) {
	query := r.db.Rebind(`DELETE FROM sessions WHERE expires_at <= ?`)
	result, err := r.db.Exec(query, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
