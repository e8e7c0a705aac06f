package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/shophub/storefront/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository persists users as a flat JSON array file. The file is read
// once at construction and rewritten wholesale on every registration.
type UserRepository struct {
	mu    sync.RWMutex
	path  string
	users []models.User
}

func NewUserRepository(path string) (*UserRepository, error) {

	repo := &UserRepository{path: path}

	data, err := os.ReadFile(path)

	switch {
	case os.IsNotExist(err):
		repo.users = defaultUsers()

		if err := repo.save(); err != nil {
			return nil, fmt.Errorf("failed to seed users file: %w", err)
		}

		slog.Info("Users file not found, seeded defaults", slog.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("failed to read users file: %w", err)
	default:
		if err := json.Unmarshal(data, &repo.users); err != nil {
			return nil, fmt.Errorf("failed to parse users file: %w", err)
		}
	}

	return repo, nil
}

// GetUserByEmail returns the user, or false if the email is unknown.
func (r *UserRepository) GetUserByEmail(email string) (models.User, bool) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, true
		}
	}

	return models.User{}, false
}

func (r *UserRepository) GetUserByID(id string) (models.User, bool) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, true
		}
	}

	return models.User{}, false
}

// CreateUser appends the user and rewrites the backing file.
func (r *UserRepository) CreateUser(user models.User) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)

	if err := r.save(); err != nil {
		r.users = r.users[:len(r.users)-1]

		return err
	}

	return nil
}

// save must be called with the write lock held.
func (r *UserRepository) save() error {

	data, err := json.MarshalIndent(r.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}

	return nil
}

// The demo account ships with password "demo123" (stored as a bcrypt hash,
// unlike the original flat-file which kept it in plaintext).
func defaultUsers() []models.User {

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost values
		panic(err)
	}

	return []models.User{
		{
			ID:           "1",
			Email:        "demo@shophub.com",
			PasswordHash: string(hash),
			Name:         "Demo User",
		},
	}
}
