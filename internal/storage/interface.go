package storage

import "userctl/internal/models"

// Storage is the persistence access layer for the user registry. Each CLI
// invocation opens one Storage, runs one operation and closes it; mutations
// run inside a transaction that commits on success and rolls back otherwise.
type Storage interface {
	AutoMigrate() error
	DropAll() error
	Close() error

	GetUser(username string) (*models.User, error)
	ListUsers() ([]*models.User, error)
	CreateUser(user *models.User) error
	UpdateEmail(username, newEmail string) (*models.User, error)
	DeleteUser(username string) error
	SearchUsers(query string) ([]*models.User, error)
	ListPaginated(limit, offset int) ([]*models.User, error)
	CountUsers() (int64, error)
}
