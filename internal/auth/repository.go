package auth

import "errors"

var (
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")

	// ErrCorruptStore is returned when the backing store exists but
	// cannot be decoded. Surfaced instead of being treated as an empty
	// collection so corruption never silently wipes data.
	ErrCorruptStore = errors.New("account store is corrupt")
)

// AccountRepository defines the data-access contract.
// The services depend ONLY on this interface.
type AccountRepository interface {
	Create(account *Account) error
	FindByEmail(email string) (*Account, error)
	FindByID(id string) (*Account, error)
	Update(account *Account) error
}
