package storage

import (
	"errors"
	"fmt"

	"userctl/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(cfg *Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.User{})
}

func (s *PostgresStore) DropAll() error {
	return s.db.Migrator().DropTable(&models.User{})
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) GetUser(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) ListUsers() ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) CreateUser(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func (s *PostgresStore) UpdateEmail(username, newEmail string) (*models.User, error) {
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

func (s *PostgresStore) DeleteUser(username string) error {
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

func (s *PostgresStore) SearchUsers(query string) ([]*models.User, error) {
	var users []*models.User
	// strpos avoids LIKE wildcard interpretation of % and _ in the query.
	if err := s.db.Where("strpos(username, ?) > 0 OR strpos(email, ?) > 0", query, query).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) ListPaginated(limit, offset int) ([]*models.User, error) {
	var users []*models.User
	if err := s.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) CountUsers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
