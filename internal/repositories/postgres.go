package repositories

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresStore is the GORM-backed TransactionRepository.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL using the DB_* environment
// variables, runs migrations and configures the connection pool.
func NewPostgresStore() (*PostgresStore, error) {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "dzpay") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour))
	sqlDB.SetConnMaxIdleTime(config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute))

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transactions: %w", err)
	}

	log.Println("✅ PostgreSQL connected & migrations applied successfully!")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ?", id).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (s *PostgresStore) Save(tx *models.Transaction) error {
	if err := s.db.Save(tx).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(id string) error {
	if err := s.db.Delete(&models.Transaction{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) All() ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := s.db.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (s *PostgresStore) ByOrder(orderID string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	if err := s.db.Where("order_id = ?", orderID).Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to list order transactions: %w", err)
	}
	return txs, nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
