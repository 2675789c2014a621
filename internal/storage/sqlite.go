package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"userctl/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore provides SQLite-based storage for local-only mode
type SQLiteStore struct {
	db *gorm.DB
}

func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	dbPath := filepath.Join(dataDir, "userctl.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.User{})
}

func (s *SQLiteStore) DropAll() error {
	// DropTable issues DROP TABLE IF EXISTS, so a fresh database is fine.
	return s.db.Migrator().DropTable(&models.User{})
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) GetUser(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *SQLiteStore) ListUsers() ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLiteStore) CreateUser(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (s *SQLiteStore) UpdateEmail(username, newEmail string) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("email", newEmail).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLiteStore) DeleteUser(username string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *SQLiteStore) SearchUsers(query string) ([]*models.User, error) {
	var users []*models.User
	// SQLite LIKE is case-insensitive for ASCII; instr keeps the
	// substring match case-sensitive.
	if err := s.db.Where("instr(username, ?) > 0 OR instr(email, ?) > 0", query, query).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLiteStore) ListPaginated(limit, offset int) ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLiteStore) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
