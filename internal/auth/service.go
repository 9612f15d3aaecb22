package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
)

type Service struct {
	repo AccountRepository
}

func NewService(repo AccountRepository) *Service {
	return &Service{repo: repo}
}

// RegisterInput carries everything the signup form may submit.
// Demographics are optional; defaults apply through Normalize.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Weight   float64
	Height   float64
	Goal     string
}

// Register hashes the password, applies defaults and stores the new
// account. The caller receives the stored record including its ID.
func (s *Service) Register(input RegisterInput) (*Account, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(input.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	account := &Account{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Age:      input.Age,
		Weight:   input.Weight,
		Height:   input.Height,
		Goal:     input.Goal,
	}

	if err := s.repo.Create(account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login resolves the email and checks the password. Unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *Service) Login(email, password string) (*Account, error) {
	account, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.VerifyPassword(account, password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// It never errors on mismatch.
func (s *Service) VerifyPassword(account *Account, plaintext string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(account.Password),
		[]byte(plaintext),
	)
	return err == nil
}
