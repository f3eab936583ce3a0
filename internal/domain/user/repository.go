package user

// Repository defines the contract for credential storage.
//
// Uniqueness of username and email is enforced by the store itself
// (constraints), not by a check-then-insert in the caller, so concurrent
// signups with the same identity cannot race past each other.
type Repository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	GetByUsername(username string) (*User, error)
	List() ([]User, error)
	SetRole(email string, role Role) error
}
