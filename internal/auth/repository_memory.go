package auth

import (
	"sync"

	"github.com/google/uuid"
)

// InMemoryAccountRepository backs unit tests. It applies the same
// defaults and duplicate checks as the durable implementations.
type InMemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*Account // keyed by ID
}

func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		accounts: make(map[string]*Account),
	}
}

func (r *InMemoryAccountRepository) Create(account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return ErrDuplicateEmail
		}
	}

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.Normalize()

	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *InMemoryAccountRepository) FindByEmail(email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return cloneAccount(account), nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *InMemoryAccountRepository) FindByID(id string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (r *InMemoryAccountRepository) Update(account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

// cloneAccount copies the record and its plan map so callers never
// share state with the store.
func cloneAccount(account *Account) *Account {
	clone := *account
	clone.CurrentMealPlan = make(MealPlan, len(account.CurrentMealPlan))
	for day, slots := range account.CurrentMealPlan {
		daySlots := make(map[string]string, len(slots))
		for slot, meal := range slots {
			daySlots[slot] = meal
		}
		clone.CurrentMealPlan[day] = daySlots
	}
	return &clone
}
