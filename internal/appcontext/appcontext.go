package appcontext

import (
	"github.com/wongco/jobly/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Context holds everything the handlers and middleware depend on. It is
// built once at startup and passed explicitly; there is no ambient state.
type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger

	JWTSecret  []byte
	BcryptCost int

	Users        repository.UserRepository
	Companies    repository.CompanyRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
}
