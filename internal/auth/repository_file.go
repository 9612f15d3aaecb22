package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileAccountRepository persists accounts as a JSON array in a single
// file. Every operation loads the whole collection and every mutation
// rewrites it. The mutex serializes access within this process;
// writers in other processes still race on the file, last one wins.
type FileAccountRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileAccountRepository(path string) (*FileAccountRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileAccountRepository{path: path}, nil
}

func (r *FileAccountRepository) Create(account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}

	for _, existing := range accounts {
		if existing.Email == account.Email {
			return ErrDuplicateEmail
		}
	}

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.Normalize()

	accounts = append(accounts, *account)
	return r.store(accounts)
}

func (r *FileAccountRepository) FindByEmail(email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			accounts[i].Normalize()
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *FileAccountRepository) FindByID(id string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].Normalize()
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *FileAccountRepository) Update(account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = *account
			return r.store(accounts)
		}
	}
	return ErrAccountNotFound
}

// load reads the whole collection. A missing file means an empty
// store; a file that exists but fails to decode is corruption and is
// surfaced as such.
func (r *FileAccountRepository) load() ([]Account, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read account store: %w", err)
	}
	if len(data) == 0 {
		return []Account{}, nil
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptStore, r.path)
	}
	return accounts, nil
}

func (r *FileAccountRepository) store(accounts []Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account store: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write account store: %w", err)
	}
	return nil
}
