package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/entity"
	"github.com/wongco/jobly/internal/repository"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultBcryptCost = 12
	// Placeholder for local development only; never deploy with it.
	defaultSecret = "test-use-env-key-in-production"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	db, err := InitDB()
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		logger.Warn("SECRET_KEY not set, using insecure development default")
		secret = defaultSecret
	}

	bcryptCost := defaultBcryptCost
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", raw, err)
		}
		bcryptCost = cost
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,

		JWTSecret:  []byte(secret),
		BcryptCost: bcryptCost,

		Users:        repository.NewUserRepository(db),
		Companies:    repository.NewCompanyRepository(db),
		Jobs:         repository.NewJobRepository(db),
		Applications: repository.NewApplicationRepository(db),
	}

	return ctx, nil
}

func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey so repositories can classify them.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(&entity.User{}, &entity.Company{}, &entity.Job{}, &entity.Application{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Port returns the port the HTTP server should bind, defaulting to 3000.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}
